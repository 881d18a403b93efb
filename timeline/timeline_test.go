package timeline

import (
	"sync"
	"testing"

	"github.com/hupe1980/agentwire/core"
)

func TestStoreGroupsBySubmission(t *testing.T) {
	store := NewStore()
	subA, subB := core.SubmissionIDFrom("a"), core.SubmissionIDFrom("b")
	taskA, taskB := core.NewTaskID(), core.NewTaskID()

	store.Append(core.TaskStarted{SubID: subA, TaskID: taskA, Prompt: "a"})
	store.Append(core.TaskStarted{SubID: subB, TaskID: taskB, Prompt: "b"})
	store.Append(core.TaskInterrupted{SubID: subA, TaskID: taskA})

	a := store.Events(subA)
	if len(a) != 2 {
		t.Fatalf("Events(a) len = %d, want 2", len(a))
	}
	if a[0].Type() != core.EventTypeTaskStarted || a[1].Type() != core.EventTypeTaskInterrupted {
		t.Errorf("Events(a) order = %v, %v", a[0].Type(), a[1].Type())
	}
	if len(store.Events(subB)) != 1 {
		t.Errorf("Events(b) len = %d, want 1", len(store.Events(subB)))
	}

	subs := store.Submissions()
	if len(subs) != 2 || subs[0] != subA || subs[1] != subB {
		t.Errorf("Submissions() = %v", subs)
	}
}

func TestStoreAttentionAndFailed(t *testing.T) {
	store := NewStore()
	sub := core.NewSubmissionID()
	taskID := core.NewTaskID()

	store.Append(core.TaskStarted{SubID: sub, TaskID: taskID, Prompt: "p"})
	store.Append(core.Warning{SubID: sub, Message: "rate limit approaching"})
	store.Append(core.TaskFailed{SubID: sub, TaskID: taskID, Error: "boom"})

	attention := store.Attention()
	if len(attention) != 1 {
		t.Fatalf("Attention() len = %d, want 1", len(attention))
	}
	if attention[0].Type() != core.EventTypeWarning {
		t.Errorf("Attention()[0] = %v", attention[0].Type())
	}
	if !store.Failed(sub) {
		t.Error("Failed() = false, want true")
	}
	if store.Failed(core.SubmissionIDFrom("other")) {
		t.Error("Failed(unknown) = true")
	}
}

func TestStoreDrop(t *testing.T) {
	store := NewStore()
	sub := core.NewSubmissionID()
	store.Append(core.TaskInterrupted{SubID: sub, TaskID: core.NewTaskID()})

	store.Drop(sub)
	if len(store.Events(sub)) != 0 {
		t.Error("events survived Drop")
	}
	if len(store.Submissions()) != 0 {
		t.Error("submission survived Drop")
	}
	// Dropping twice is a no-op.
	store.Drop(sub)
}

func TestStoreConcurrentAppend(t *testing.T) {
	store := NewStore()
	sub := core.NewSubmissionID()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.Append(core.AgentMessage{SubID: sub, AgentID: core.NewAgentID(), Content: "x", MessageType: core.MessageText})
			}
		}()
	}
	wg.Wait()

	if got := len(store.Events(sub)); got != 1000 {
		t.Errorf("Events() len = %d, want 1000", got)
	}
}
