package event

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"sync"
	"testing"
	"time"
	"vincit.fi/asset-fitter/api"
)

func TestBroker_SendCommandToTopic(t *testing.T) {
	a := assert.New(t)

	broker := InitBus(10)
	var wg sync.WaitGroup
	wg.Add(2)
	var received []int
	broker.Subscribe(api.ProcessStatusUpdated, func(command *api.UpdateProgressCommand) {
		received = append(received, command.Current)
		wg.Done()
	})

	broker.SendCommandToTopic(api.ProcessStatusUpdated, &api.UpdateProgressCommand{Name: "a", Current: 1, Total: 2})
	broker.SendCommandToTopic(api.ProcessStatusUpdated, &api.UpdateProgressCommand{Name: "b", Current: 2, Total: 2})
	wg.Wait()

	a.Equal([]int{1, 2}, received)
}

func TestBroker_SendError(t *testing.T) {
	broker := InitBus(10)
	messages := make(chan string, 1)
	broker.Subscribe(api.ShowError, func(command *api.ErrorCommand) {
		messages <- command.Message
	})

	broker.SendError("Could not write", errors.New("disk full"))

	assert.Equal(t, "Could not write\ndisk full", <-messages)
}

func TestSenderProgressReporter(t *testing.T) {
	a := assert.New(t)

	broker := InitBus(10)
	updates := make(chan *api.UpdateProgressCommand, 1)
	generated := make(chan *api.AssetGeneratedCommand, 1)
	broker.Subscribe(api.ProcessStatusUpdated, func(command *api.UpdateProgressCommand) {
		updates <- command
	})
	broker.Subscribe(api.AssetGenerated, func(command *api.AssetGeneratedCommand) {
		generated <- command
	})
	reporter := api.NewSenderProgressReporter(broker)

	reporter.Update("mdpi", 1, 5)
	reporter.Generated(&api.AssetResult{Path: "out.png"})

	update := <-updates
	a.Equal("mdpi", update.Name)
	a.Equal(1, update.Current)
	a.Equal(5, update.Total)
	a.Equal("out.png", (<-generated).Result.Path)
}

func TestBroker_Wait(t *testing.T) {
	a := assert.New(t)

	broker := InitBus(10)
	var received []string
	broker.Subscribe(api.AssetGenerated, func(command *api.AssetGeneratedCommand) {
		time.Sleep(5 * time.Millisecond)
		received = append(received, command.Result.Path)
	})

	for _, path := range []string{"a.png", "b.png", "c.png"} {
		broker.SendCommandToTopic(api.AssetGenerated, &api.AssetGeneratedCommand{Result: &api.AssetResult{Path: path}})
	}
	broker.Close(api.AssetGenerated)
	broker.Wait()

	a.Equal([]string{"a.png", "b.png", "c.png"}, received)

	t.Run("Closed topic is not delivered", func(t *testing.T) {
		broker.SendCommandToTopic(api.AssetGenerated, &api.AssetGeneratedCommand{Result: &api.AssetResult{Path: "d.png"}})
		broker.Wait()
		a.Len(received, 3)
	})
	t.Run("Without subscribers", func(t *testing.T) {
		broker.SendToTopic(api.ProcessStatusUpdated)
		broker.Wait()
	})
}

func TestBroker_Subscribe_NotAFunction(t *testing.T) {
	broker := InitBus(10)
	assert.Panics(t, func() {
		broker.Subscribe(api.ShowError, "not a function")
	})
}
