package ranking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hookedapp/hooked/internal/features/hooks"
	"github.com/hookedapp/hooked/internal/features/interactions"
	"github.com/hookedapp/hooked/internal/features/profiles"
)

type fakeHookSource struct{ items []hooks.Hook }

func (f *fakeHookSource) GetAll(ctx context.Context) ([]hooks.Hook, error) { return f.items, nil }

type fakeEventSource struct {
	events []interactions.Event
	err    error
}

func (f *fakeEventSource) GetAll(ctx context.Context) ([]interactions.Event, error) {
	return f.events, f.err
}

type fakeTagSource struct{ tags map[primitive.ObjectID][]string }

func (f *fakeTagSource) ExplicitTagsByUser(ctx context.Context) (map[primitive.ObjectID][]string, error) {
	return f.tags, nil
}

type fakeProfileSink struct {
	stored   map[primitive.ObjectID]profiles.InterestProfile
	writeErr error
}

func newFakeProfileSink() *fakeProfileSink {
	return &fakeProfileSink{stored: make(map[primitive.ObjectID]profiles.InterestProfile)}
}

func (f *fakeProfileSink) BulkUpsert(ctx context.Context, batch []profiles.InterestProfile) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	for _, p := range batch {
		f.stored[p.UserID] = p
	}
	return nil
}

func TestRecomputer_Run(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	hookA := testHook(primitive.NewObjectID(), []string{"history"}, now)
	hookB := testHook(primitive.NewObjectID(), []string{"science"}, now)

	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	sink := newFakeProfileSink()
	rec := &Recomputer{
		Hooks: &fakeHookSource{items: []hooks.Hook{hookA, hookB}},
		Events: &fakeEventSource{events: []interactions.Event{
			{UserID: alice, HookID: hookA.ID, Action: interactions.ActionSave},
			{UserID: bob, HookID: hookB.ID, Action: interactions.ActionLike},
			{UserID: bob, HookID: primitive.NewObjectID(), Action: interactions.ActionShare},
		}},
		Tags:     &fakeTagSource{tags: map[primitive.ObjectID][]string{alice: {"art"}}},
		Profiles: sink,
		Builder:  NewVectorBuilder(),
		Workers:  4,
	}

	report, err := rec.Run(context.Background(), now)
	require.NoError(t, err)

	require.Equal(t, 2, report.UsersProcessed)
	require.Equal(t, 2, report.ProfilesWritten)
	require.Equal(t, 2, report.EventsProcessed)
	require.Equal(t, 1, report.EventsSkipped)

	require.InDelta(t, 2.5, sink.stored[alice].InterestVector["history"], 1e-9)
	require.InDelta(t, 5.0, sink.stored[alice].InterestVector["art"], 1e-9)
	require.InDelta(t, 2.0, sink.stored[bob].InterestVector["science"], 1e-9)
	require.Equal(t, now, sink.stored[alice].LastUpdated)
}

func TestRecomputer_SecondPassOverwrites(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)
	// Created after both pass timestamps, so age clamps to zero and the
	// decay factor stays exactly 1 across passes.
	hook := testHook(primitive.NewObjectID(), []string{"tech"}, later.Add(time.Hour))
	user := primitive.NewObjectID()

	sink := newFakeProfileSink()
	events := &fakeEventSource{events: []interactions.Event{
		{UserID: user, HookID: hook.ID, Action: interactions.ActionLike},
	}}
	rec := &Recomputer{
		Hooks:    &fakeHookSource{items: []hooks.Hook{hook}},
		Events:   events,
		Tags:     &fakeTagSource{},
		Profiles: sink,
		Builder:  NewVectorBuilder(),
	}

	_, err := rec.Run(context.Background(), now)
	require.NoError(t, err)
	require.InDelta(t, 2.0, sink.stored[user].InterestVector["tech"], 1e-9)

	// More history accumulates; the second pass replaces the stored vector
	// rather than merging into it.
	events.events = append(events.events, interactions.Event{
		UserID: user, HookID: hook.ID, Action: interactions.ActionSave,
	})

	_, err = rec.Run(context.Background(), later)
	require.NoError(t, err)
	require.InDelta(t, 4.5, sink.stored[user].InterestVector["tech"], 1e-9)
	require.Equal(t, later, sink.stored[user].LastUpdated)
}

func TestRecomputer_UsersWithoutEventsUntouched(t *testing.T) {
	now := time.Now()
	idle := primitive.NewObjectID()

	sink := newFakeProfileSink()
	sink.stored[idle] = profiles.InterestProfile{UserID: idle, InterestVector: map[string]float64{"old": 1}}

	rec := &Recomputer{
		Hooks:    &fakeHookSource{},
		Events:   &fakeEventSource{},
		Tags:     &fakeTagSource{tags: map[primitive.ObjectID][]string{idle: {"old"}}},
		Profiles: sink,
		Builder:  NewVectorBuilder(),
	}

	report, err := rec.Run(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, 0, report.UsersProcessed)
	require.Equal(t, 1.0, sink.stored[idle].InterestVector["old"])
}

func TestRecomputer_SourceFailureAborts(t *testing.T) {
	rec := &Recomputer{
		Hooks:    &fakeHookSource{},
		Events:   &fakeEventSource{err: errors.New("log unreadable")},
		Tags:     &fakeTagSource{},
		Profiles: newFakeProfileSink(),
		Builder:  NewVectorBuilder(),
	}

	_, err := rec.Run(context.Background(), time.Now())
	require.Error(t, err)
}
