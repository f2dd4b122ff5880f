package queue

// Subjects published by the parking services. Consumers outside this repo
// (mobile push, dashboards) subscribe by these names.
const (
	SubjectOrderExpiring = "parking.order.expiring"
	SubjectOrderRenewed  = "parking.order.renewed"
	SubjectOrderCanceled = "parking.order.canceled"
	SubjectPaymentMade   = "parking.payment.made"
)
