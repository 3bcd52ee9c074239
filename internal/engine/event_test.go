package engine

import "testing"

func TestEventWithArgInvokeOrder(t *testing.T) {
	var ev EventWithArg[int]
	var got []int

	ev.AddListener(func(v int) { got = append(got, v) })
	ev.AddListener(func(v int) { got = append(got, v*10) })
	ev.AddListener(nil)

	if ev.GetListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", ev.GetListenerCount())
	}

	ev.Invoke(3)

	if len(got) != 2 || got[0] != 3 || got[1] != 30 {
		t.Errorf("Unexpected invocation results: %v", got)
	}

	ev.RemoveAllListeners()
	ev.Invoke(4)
	if len(got) != 2 {
		t.Error("Listeners should not fire after RemoveAllListeners")
	}
}
