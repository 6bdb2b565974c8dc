package natsdomain

type ActionType string

const (
	// wallet backend -> api
	MsgActionError ActionType = "error"
	// wallet backend -> api
	MsgActionPaid ActionType = "paid"
)

// subjects for nats

// .js. - jetstream
var SubjectsJetStream = [...]string{"payments.js.paid"}

// .core. - nats core
var Subjects = [...]string{"wallet.core.create_invoice", "wallet.core.get_payment", "wallet.core.ping"}

const StreamPayments = "payments"

// durable consumer name of the ticket extension. re-registering under the
// same name replaces the previous consumer instead of adding a second one.
const ConsumerTickets = "ext_lnticket"

// invoice tag this extension owns. the payments stream is shared across
// extensions, anything with another tag is ignored.
const TagTickets = "lnticket"

type SubjType uint8
type SubjJsType uint8

// nats core subjects
const (
	SubjCreateInvoice SubjType = iota
	SubjGetPayment
	SubjPing
)

// nats jetstream subjects
const (
	SubjJsPaid SubjJsType = iota
)

func (s SubjType) String() string {
	return Subjects[s]
}

func (s SubjJsType) String() string {
	return SubjectsJetStream[s]
}
