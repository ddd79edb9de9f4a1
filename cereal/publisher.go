package cereal

import (
	"capnproto.org/go/capnp/v3"
	"github.com/pfeiferj/gomsgq"
	"pfeifer.dev/soard/cereal/soar"
)

type MessageCreator[T any] func(soar.Event) (T, error)

type Publisher[T any] struct {
	Pub     gomsgq.MsgqPublisher
	creator MessageCreator[T]
}

func (p *Publisher[T]) Send(msg *capnp.Message) error {
	b, err := msg.Marshal()
	if err != nil {
		return err
	}
	p.Pub.Send(b)
	return nil
}

func (p *Publisher[T]) NewMessage(valid bool) (msg *capnp.Message, obj T) {
	return NewMessage(valid, p.creator)
}

// NewMessage builds an event envelope around a fresh T. It does not need a
// queue, which keeps message building testable.
func NewMessage[T any](valid bool, creator MessageCreator[T]) (msg *capnp.Message, obj T) {
	arena := capnp.SingleSegment(nil)

	msg, seg, err := capnp.NewMessage(arena)
	if err != nil {
		panic(err)
	}

	event, err := soar.NewRootEvent(seg)
	if err != nil {
		panic(err)
	}

	event.SetLogMonoTime(GetTime())
	event.SetValid(valid)

	obj, err = creator(event)
	if err != nil {
		panic(err)
	}

	return msg, obj
}

func NewPublisher[T any](name string, creator MessageCreator[T]) (publisher Publisher[T]) {
	pub := gomsgq.MsgqPublisher{}
	pub.Init(openQueue(name))

	publisher.Pub = pub
	publisher.creator = creator
	return publisher
}
