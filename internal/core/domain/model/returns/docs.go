// Package returns contains the product return aggregate.
//
// A Return tracks goods coming back from a customer: the request, the
// approval decision against the 30-day return window, the physical journey
// of the goods, and the refund. The aggregate consists of:
//   - Return: the aggregate root referencing the originating order and the
//     customer case opened for the return
//   - ReturnItem: a returned product line with its refund share
//   - Reason: why the customer is returning the goods
//   - Status: the return lifecycle state machine
package returns
