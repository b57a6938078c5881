// Package kernel provides the shared value objects of the webshop domain model.
// It implements the self-validating, immutable building blocks that entities
// and services are composed from.
//
// The package includes:
//   - UUID: a value object for entity identifiers
//   - Money: fixed-point monetary amounts with a currency code
//   - Quantity: non-negative integer amounts
//   - SKU, EmailAddress, PhoneNumber: normalized, pattern-validated strings
//   - Address: a postal address with required components
//   - OrderNumber: an opaque, generated order identifier
//
// Construction is the only validation point: once a value object exists it is
// immutable, and every derived instance (for example the result of Money
// arithmetic) is re-validated and re-rounded identically. The zero value of
// each type is invalid and fails Validate; constructors are the only way to
// obtain usable instances.
package kernel
