package event

import (
	"fmt"
	messagebus "github.com/vardius/message-bus"
	"reflect"
	"sync"
	"vincit.fi/asset-fitter/api"
	"vincit.fi/asset-fitter/api/apitype"
	"vincit.fi/asset-fitter/common/logger"
)

type Broker struct {
	bus         messagebus.MessageBus
	subscribers map[api.Topic]int
	pending     sync.WaitGroup
	mux         sync.RWMutex

	api.Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus:         messagebus.New(queueSize),
		subscribers: map[api.Topic]int{},
	}
}

// Subscribe registers fn for the topic. Handlers are called asynchronously
// in the order the messages were published.
func (s *Broker) Subscribe(topic api.Topic, fn interface{}) {
	handler := reflect.ValueOf(fn)
	if handler.Kind() != reflect.Func {
		logger.Error.Panicf("Could not subscribe to '%s': %T is not a function", topic, fn)
	}
	tracked := reflect.MakeFunc(handler.Type(), func(args []reflect.Value) []reflect.Value {
		defer s.pending.Done()
		return handler.Call(args)
	})

	s.mux.Lock()
	defer s.mux.Unlock()
	if err := s.bus.Subscribe(string(topic), tracked.Interface()); err != nil {
		logger.Error.Panic("Could not subscribe", err)
	}
	s.subscribers[topic]++
}

func (s *Broker) SendToTopic(topic api.Topic) {
	logger.Trace.Printf("Sending to '%s'", topic)
	s.publish(topic)
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	logger.Trace.Printf("Sending command to '%s': %s", topic, command)
	s.publish(topic, command)
}

func (s *Broker) publish(topic api.Topic, args ...interface{}) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	s.pending.Add(s.subscribers[topic])
	s.bus.Publish(string(topic), args...)
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := ""
	if err != nil {
		formattedMessage = fmt.Sprintf("%s\n%s", message, err.Error())
	} else {
		formattedMessage = message
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: formattedMessage})
}

// Close removes the subscribers of the topic. Messages already queued for
// them are still delivered; use Wait to block until they have been.
func (s *Broker) Close(topic api.Topic) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.bus.Close(string(topic))
	delete(s.subscribers, topic)
}

// Wait blocks until every handler call for messages published so far has
// returned.
func (s *Broker) Wait() {
	s.pending.Wait()
}
