package chatwindow

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialState(t *testing.T) {
	c := NewProvider().Coordinator()

	expanded, err := c.Expanded()
	require.NoError(t, err)
	assert.False(t, expanded)

	minimized, err := c.Minimized()
	require.NoError(t, err)
	assert.False(t, minimized)
}

func TestFlagsAreIndependent(t *testing.T) {
	c := NewProvider().Coordinator()

	require.NoError(t, c.SetExpanded(true))
	require.NoError(t, c.SetMinimized(true))

	s, err := c.State()
	require.NoError(t, err)
	assert.Equal(t, State{Expanded: true, Minimized: true}, s)

	require.NoError(t, c.SetExpanded(false))
	s, _ = c.State()
	assert.Equal(t, State{Expanded: false, Minimized: true}, s)
}

func TestToggles(t *testing.T) {
	c := NewProvider().Coordinator()

	require.NoError(t, c.ToggleMinimized())
	minimized, _ := c.Minimized()
	assert.True(t, minimized)

	require.NoError(t, c.ToggleExpanded())
	require.NoError(t, c.ToggleExpanded())
	expanded, _ := c.Expanded()
	assert.False(t, expanded)
	minimized, _ = c.Minimized()
	assert.True(t, minimized)
}

func TestConsumersShareState(t *testing.T) {
	p := NewProvider()
	a := p.Coordinator()
	b := p.Coordinator()

	require.NoError(t, a.SetExpanded(true))
	expanded, err := b.Expanded()
	require.NoError(t, err)
	assert.True(t, expanded)
}

func TestProvidersAreIsolated(t *testing.T) {
	a := NewProvider().Coordinator()
	b := NewProvider().Coordinator()

	require.NoError(t, a.SetMinimized(true))
	minimized, _ := b.Minimized()
	assert.False(t, minimized)
}

func TestAccessAfterCloseFails(t *testing.T) {
	p := NewProvider()
	c := p.Coordinator()
	p.Close()
	p.Close() // idempotent

	_, err := c.Expanded()
	assertScopeError(t, err, "Expanded")
	_, err = c.Minimized()
	assertScopeError(t, err, "Minimized")
	_, err = c.State()
	assertScopeError(t, err, "State")
	assertScopeError(t, c.SetExpanded(true), "SetExpanded")
	assertScopeError(t, c.SetMinimized(true), "SetMinimized")
	assertScopeError(t, c.ToggleExpanded(), "ToggleExpanded")
	_, _, err = c.Subscribe()
	assertScopeError(t, err, "Subscribe")
}

func TestZeroCoordinatorFails(t *testing.T) {
	var c Coordinator
	_, err := c.Expanded()
	assertScopeError(t, err, "Expanded")
	assertScopeError(t, c.SetMinimized(true), "SetMinimized")
}

func TestNilCoordinatorFails(t *testing.T) {
	c, err := FromContext(context.Background())
	require.Nil(t, c)
	assertScopeError(t, err, "FromContext")

	_, err = c.Expanded()
	assertScopeError(t, err, "Expanded")
	_, err = c.Minimized()
	assertScopeError(t, err, "Minimized")
	assertScopeError(t, c.SetExpanded(true), "SetExpanded")
	assertScopeError(t, c.ToggleMinimized(), "ToggleMinimized")

	ch, cancel, err := c.Subscribe()
	assert.Nil(t, ch)
	assert.Nil(t, cancel)
	assertScopeError(t, err, "Subscribe")
}

func TestFromContext(t *testing.T) {
	_, err := FromContext(context.Background())
	assertScopeError(t, err, "FromContext")

	p := NewProvider()
	ctx := WithProvider(context.Background(), p)
	c, err := FromContext(ctx)
	require.NoError(t, err)
	require.NoError(t, c.SetExpanded(true))

	other, err := FromContext(ctx)
	require.NoError(t, err)
	expanded, _ := other.Expanded()
	assert.True(t, expanded)

	p.Close()
	_, err = FromContext(ctx)
	assertScopeError(t, err, "FromContext")
}

func TestSubscribeReceivesLatest(t *testing.T) {
	p := NewProvider()
	c := p.Coordinator()

	ch, cancel, err := c.Subscribe()
	require.NoError(t, err)
	defer cancel()

	require.NoError(t, c.SetExpanded(true))
	require.NoError(t, c.SetMinimized(true))

	// only the newest state is buffered
	got := <-ch
	assert.Equal(t, State{Expanded: true, Minimized: true}, got)
	select {
	case s := <-ch:
		t.Fatalf("unexpected extra state %+v", s)
	default:
	}
}

func TestSubscribeCancelAndClose(t *testing.T) {
	p := NewProvider()
	c := p.Coordinator()

	ch1, cancel1, err := c.Subscribe()
	require.NoError(t, err)
	ch2, _, err := c.Subscribe()
	require.NoError(t, err)

	cancel1()
	cancel1() // safe twice
	_, ok := <-ch1
	assert.False(t, ok)

	p.Close()
	_, ok = <-ch2
	assert.False(t, ok)
}

func TestConcurrentAccess(t *testing.T) {
	p := NewProvider()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := p.Coordinator()
			for j := 0; j < 100; j++ {
				_ = c.SetExpanded(i%2 == 0)
				_, _ = c.Minimized()
			}
		}(i)
	}
	wg.Wait()
	_, err := p.Coordinator().State()
	assert.NoError(t, err)
}

func assertScopeError(t *testing.T, err error, op string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoProvider)

	var scopeErr *ScopeError
	require.ErrorAs(t, err, &scopeErr)
	assert.Equal(t, op, scopeErr.Op)
	assert.Contains(t, err.Error(), "must be used within a Provider")
}
