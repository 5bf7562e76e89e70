package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitDispatchesInRegistrationOrder(t *testing.T) {
	e := NewEmitter()
	var order []int

	e.AddListener(func(Event) { order = append(order, 1) })
	e.AddListener(func(Event) { order = append(order, 2) })
	e.AddListener(func(Event) { order = append(order, 3) })

	e.Emit(DevicePaired{})

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestRemoveListenerStopsDelivery(t *testing.T) {
	e := NewEmitter()
	calls := 0
	tok := e.AddListener(func(Event) { calls++ })

	e.Emit(DevicePaired{})
	e.RemoveListener(tok)
	e.Emit(DevicePaired{})

	assert.Equal(t, 1, calls)
}

func TestAddListenerDuringDispatchIsDeferred(t *testing.T) {
	e := NewEmitter()
	var secondCalls int

	e.AddListener(func(Event) {
		e.AddListener(func(Event) { secondCalls++ })
	})

	e.Emit(DevicePaired{})
	assert.Equal(t, 0, secondCalls, "listener added mid-dispatch must not run during the same Emit")

	e.Emit(DevicePaired{})
	assert.Equal(t, 1, secondCalls)
}

func TestRemoveListenerDuringDispatchIsDeferred(t *testing.T) {
	e := NewEmitter()
	var calls int
	var tok Token
	tok = e.AddListener(func(Event) {
		calls++
		e.RemoveListener(tok)
	})

	e.Emit(DevicePaired{})
	assert.Equal(t, 1, calls, "the listener removing itself still runs once for the Emit that triggered it")

	e.Emit(DevicePaired{})
	assert.Equal(t, 1, calls, "removal took effect before the next Emit")
}

func TestCharacteristicValueChangedCarriesFields(t *testing.T) {
	var got CharacteristicValueChanged
	e := NewEmitter()
	e.AddListener(func(ev Event) {
		if c, ok := ev.(CharacteristicValueChanged); ok {
			got = c
		}
	})

	e.Emit(CharacteristicValueChanged{AID: 2, IID: 9, Value: true})

	assert.Equal(t, uint64(2), got.AID)
	assert.Equal(t, uint64(9), got.IID)
	assert.Equal(t, true, got.Value)
}
