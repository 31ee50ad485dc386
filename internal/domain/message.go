package domain

// MessageType is the `type` discriminator of a non-registration frame.
type MessageType string

const (
	TypeOffer     MessageType = "offer"
	TypeAnswer    MessageType = "answer"
	TypeCandidate MessageType = "candidate"
)

// Direction names a candidate flow by its destination side.
type Direction int

const (
	ToConsumer Direction = iota // producer -> consumer
	ToProducer                  // consumer -> producer
)

// DirectionFrom returns the flow for frames sent by role r.
func DirectionFrom(r Role) (Direction, bool) {
	switch r {
	case RoleProducer:
		return ToConsumer, true
	case RoleConsumer:
		return ToProducer, true
	}
	return 0, false
}

// Dest is the role a flow delivers to.
func (d Direction) Dest() Role {
	if d == ToConsumer {
		return RoleConsumer
	}
	return RoleProducer
}

func (d Direction) String() string {
	if d == ToConsumer {
		return "producer->consumer"
	}
	return "consumer->producer"
}
