package cereal

import (
	"math"

	"capnproto.org/go/capnp/v3"
	"github.com/pfeiferj/gomsgq"
	"pfeifer.dev/soard/cereal/soar"
)

type Reader[T any] func(soar.Event) (T, error)

type Subscriber[T any] struct {
	Sub    gomsgq.MsgqSubscriber
	reader Reader[T]
}

func (s *Subscriber[T]) Read() (obj T, success bool) {
	data := s.Sub.Read()
	if len(data) == 0 {
		return obj, false
	}
	return Decode(data, s.reader)
}

// Decode unpacks one queue message with reader.
func Decode[T any](data []byte, reader Reader[T]) (obj T, success bool) {
	msg, err := capnp.Unmarshal(data)
	if err != nil {
		return obj, false
	}

	// allow us to read as much as we want
	msg.ResetReadLimit(math.MaxUint64)

	event, err := soar.ReadRootEvent(msg)
	if err != nil {
		return obj, false
	}

	obj, err = reader(event)
	if err != nil {
		return obj, false
	}
	return obj, true
}

func (s *Subscriber[T]) Close() {
	err, err2 := s.Sub.Msgq.Close()
	if err != nil {
		panic(err)
	}
	if err2 != nil {
		panic(err2)
	}
}

func NewSubscriber[T any](name string, reader Reader[T], conflate bool) (subscriber Subscriber[T]) {
	sub := gomsgq.MsgqSubscriber{}
	sub.Conflate = conflate
	sub.Init(openQueue(name))

	subscriber.Sub = sub
	subscriber.reader = reader
	return subscriber
}
