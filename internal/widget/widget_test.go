package widget

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/generator"
)

// countingSource walks the alphabet and records how many indexes were drawn.
type countingSource struct {
	mu    sync.Mutex
	calls int
}

func (s *countingSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.calls % n
	s.calls++
	return idx
}

func (s *countingSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestWidget(t *testing.T, cb clipboard.Writer, opts ...Option) (*Widget, *countingSource) {
	t.Helper()
	src := &countingSource{}
	w, err := New(generator.New(src), cb, opts...)
	require.NoError(t, err)
	return w, src
}

func TestNewStartsWithDefaults(t *testing.T) {
	w, src := newTestWidget(t, nil)

	st := w.State()
	assert.Equal(t, generator.DefaultConfig(), st.Config)
	assert.Len(t, st.Password, generator.DefaultLength)
	assert.Equal(t, generator.Weak, st.Strength)
	assert.Equal(t, generator.DefaultLength, src.Calls())
}

func TestWithConfigClampsLength(t *testing.T) {
	w, _ := newTestWidget(t, nil, WithConfig(generator.Config{Length: 1000, IncludeDigits: true}))

	st := w.State()
	assert.Equal(t, generator.MaxLength, st.Config.Length)
	assert.Len(t, st.Password, generator.MaxLength)
}

func TestSetLengthRegeneratesAndClamps(t *testing.T) {
	w, _ := newTestWidget(t, nil)
	before := w.State().Password

	st, err := w.SetLength(12)
	require.NoError(t, err)
	assert.Equal(t, 12, st.Config.Length)
	assert.Len(t, st.Password, 12)
	assert.NotEqual(t, before, st.Password)

	st, err = w.SetLength(2)
	require.NoError(t, err)
	assert.Equal(t, generator.MinLength, st.Config.Length)
	assert.Len(t, st.Password, generator.MinLength)
}

func TestUnchangedConfigDoesNotRegenerate(t *testing.T) {
	w, src := newTestWidget(t, nil)
	before := w.State()
	calls := src.Calls()

	st, err := w.SetLength(generator.DefaultLength)
	require.NoError(t, err)
	assert.Equal(t, before, st)

	_, err = w.SetIncludeDigits(false)
	require.NoError(t, err)
	assert.Equal(t, calls, src.Calls())
}

func TestTogglesRecomputeStrength(t *testing.T) {
	w, _ := newTestWidget(t, nil)

	st, err := w.ToggleDigits()
	require.NoError(t, err)
	assert.True(t, st.Config.IncludeDigits)
	assert.Equal(t, generator.Medium, st.Strength)

	_, err = w.SetLength(12)
	require.NoError(t, err)
	st, err = w.ToggleSymbols()
	require.NoError(t, err)
	assert.True(t, st.Config.IncludeSymbols)
	assert.Equal(t, generator.Strong, st.Strength)

	st, err = w.ToggleDigits()
	require.NoError(t, err)
	assert.False(t, st.Config.IncludeDigits)
	assert.Equal(t, generator.Medium, st.Strength)
}

func TestUpdateAppliesPatch(t *testing.T) {
	w, _ := newTestWidget(t, nil)
	length, digits, symbols := 40, true, true

	st, err := w.Update(Patch{Length: &length, IncludeDigits: &digits, IncludeSymbols: &symbols})
	require.NoError(t, err)

	assert.Equal(t, generator.Config{Length: 40, IncludeDigits: true, IncludeSymbols: true}, st.Config)
	alphabet := generator.BuildAlphabet(st.Config)
	for _, ch := range st.Password {
		assert.True(t, strings.ContainsRune(alphabet, ch), "unexpected %q", ch)
	}
}

func TestRegenerateKeepsConfig(t *testing.T) {
	w, _ := newTestWidget(t, nil)
	before := w.State()

	st, err := w.Regenerate()
	require.NoError(t, err)
	assert.Equal(t, before.Config, st.Config)
	assert.NotEqual(t, before.Password, st.Password)
	assert.Len(t, st.Password, before.Config.Length)
}

func TestCopySuccessNotifies(t *testing.T) {
	var copied string
	cb := clipboard.WriterFunc(func(text string) error {
		copied = text
		return nil
	})
	var got []clipboard.Result
	w, _ := newTestWidget(t, cb, WithNotifier(clipboard.NotifierFunc(func(r clipboard.Result) {
		got = append(got, r)
	})))

	res := w.Copy(context.Background())

	assert.True(t, res.OK())
	assert.Equal(t, w.State().Password, copied)
	require.Len(t, got, 1)
	assert.Equal(t, clipboard.Copied, got[0].Outcome)
}

func TestCopyFailureNotifiesOnce(t *testing.T) {
	denied := errors.New("denied")
	var calls int
	cb := clipboard.WriterFunc(func(string) error {
		calls++
		return denied
	})
	var got []clipboard.Result
	w, _ := newTestWidget(t, cb, WithNotifier(clipboard.NotifierFunc(func(r clipboard.Result) {
		got = append(got, r)
	})))

	res := w.Copy(context.Background())

	assert.Equal(t, clipboard.Failed, res.Outcome)
	assert.ErrorIs(t, res.Err, denied)
	assert.Equal(t, 1, calls)
	require.Len(t, got, 1)
	assert.Equal(t, clipboard.Failed, got[0].Outcome)
}

func TestConcurrentUse(t *testing.T) {
	w, err := New(generator.New(nil), nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = w.SetLength(generator.MinLength + i)
			_, _ = w.ToggleSymbols()
			_, _ = w.Regenerate()
		}(i)
	}
	wg.Wait()

	st := w.State()
	assert.Len(t, st.Password, st.Config.Length)
	assert.Equal(t, generator.Classify(st.Config), st.Strength)
}
