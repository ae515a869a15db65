package currency

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	money "github.com/bankey/account-summary/pkg/decimal"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines map[string][]string
}

func (r *recordingLogger) record(level, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lines == nil {
		r.lines = map[string][]string{}
	}
	r.lines[level] = append(r.lines[level], fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Debugf(format string, args ...any) { r.record("debug", format, args...) }
func (r *recordingLogger) Infof(format string, args ...any)  { r.record("info", format, args...) }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.record("warn", format, args...) }
func (r *recordingLogger) Errorf(format string, args ...any) { r.record("error", format, args...) }

func TestNewDecomposer_Defaults(t *testing.T) {
	d := NewDecomposer()
	assert.Equal(t, DefaultOptions(), d.Options)
	assert.IsType(t, NopLogger{}, d.Logger)

	dollars, cents, err := d.BreakIntoDollarsAndCents(money.NewMoney(929466.23))
	require.NoError(t, err)
	assert.Equal(t, "929,466", dollars)
	assert.Equal(t, "23", cents)
}

func TestNewDecomposer_Options(t *testing.T) {
	d := NewDecomposer(
		WithSymbol("CHF "),
		WithGroupingSeparator("'"),
		WithDecimalSeparator("."),
		WithDecimalPlaces(2),
		WithSignPlacement(SignBeforeSymbol),
	)
	got, err := d.Format(money.NewMoney(-1234567.891))
	require.NoError(t, err)
	assert.Equal(t, "-CHF 1'234'567.89", got.String())

	d = NewDecomposer(WithOptions(Options{Symbol: "¥", DecimalPlaces: 0}))
	got, err = d.Format(money.NewMoney(1234))
	require.NoError(t, err)
	assert.Equal(t, "¥1234", got.String())
}

func TestDecomposer_LogsCarryAndInvalid(t *testing.T) {
	rec := &recordingLogger{}
	d := NewDecomposer()
	d.SetLogger(rec)

	got, err := d.Format(money.NewMoney(0.999))
	require.NoError(t, err)
	assert.Equal(t, "$1.00", got.String())
	require.Len(t, rec.lines["debug"], 1)
	assert.Contains(t, rec.lines["debug"][0], "0.999")

	_, err = d.Format(money.NaN())
	assert.ErrorIs(t, err, ErrInvalidAmount)
	require.Len(t, rec.lines["warn"], 1)

	_, _, err = d.BreakIntoDollarsAndCents(money.NaN())
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestDecomposer_InvalidOptions(t *testing.T) {
	rec := &recordingLogger{}
	d := NewDecomposer(WithDecimalPlaces(-1))
	d.SetLogger(rec)
	_, err := d.Format(money.NewMoney(1))
	assert.ErrorIs(t, err, ErrInvalidOptions)
	assert.Len(t, rec.lines["error"], 1)
}

func TestDecomposer_SetLoggerNil(t *testing.T) {
	d := NewDecomposer()
	d.SetLogger(nil)
	assert.IsType(t, NopLogger{}, d.Logger)

	// A zero Decomposer with a nil logger still works.
	var zero Decomposer
	zero.Options = DefaultOptions()
	got, err := zero.Format(money.NewMoney(0.999))
	require.NoError(t, err)
	assert.Equal(t, "$1.00", got.String())
}

func TestDecomposer_Concurrent(t *testing.T) {
	d := NewDecomposer()
	amounts := []float64{929466.23, 17562.44, 412.83, 50.83, 2000, 15000}
	want := []string{"$929,466.23", "$17,562.44", "$412.83", "$50.83", "$2,000.00", "$15,000.00"}

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, a := range amounts {
				got, err := d.Format(money.NewMoney(a))
				if err != nil {
					errs <- err
					return
				}
				if got.String() != want[i] {
					errs <- fmt.Errorf("got %s want %s", got, want[i])
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
