package seed

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/constants"
)

// recordingTx satisfies the query surface the seed inserts use. Existence
// probes answer from the existing set keyed by their first argument; tag and
// email lookups always miss.
type recordingTx struct {
	existing map[string]bool
	execs    []string
}

func (t *recordingTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	t.execs = append(t.execs, sql)
	return pgconn.CommandTag{}, nil
}

func (t *recordingTx) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, pgx.ErrNoRows
}

func (t *recordingTx) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	if strings.HasPrefix(sql, "SELECT EXISTS") {
		present := t.existing[fmt.Sprint(args[0])]
		return scanFunc(func(dest ...any) error {
			*dest[0].(*bool) = present
			return nil
		})
	}
	return scanFunc(func(...any) error { return pgx.ErrNoRows })
}

type scanFunc func(dest ...any) error

func (f scanFunc) Scan(dest ...any) error { return f(dest...) }

func seedContext(tx *recordingTx) context.Context {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	ctx := context.WithValue(context.Background(), constants.TxKey, tx)
	return composables.WithLogger(ctx, logrus.NewEntry(logger))
}

func TestSeedComponentsSkipsExistingRows(t *testing.T) {
	tx := &recordingTx{existing: map[string]bool{}}
	for _, c := range Components {
		tx.existing[c.Name] = true
	}

	warned, err := insertComponents(seedContext(tx))
	require.NoError(t, err)
	assert.Zero(t, warned)
	assert.Empty(t, tx.execs, "a re-seed must not insert duplicate components")
}

func TestSeedComponentsInsertsMissingRows(t *testing.T) {
	tx := &recordingTx{existing: map[string]bool{}}

	warned, err := insertComponents(seedContext(tx))
	require.NoError(t, err)
	assert.Len(t, tx.execs, len(Components))
	// two components reference an asset tag the lookup cannot resolve
	assert.Equal(t, 2, warned)
}

func TestSeedAccessoriesSkipsExistingRows(t *testing.T) {
	tx := &recordingTx{existing: map[string]bool{}}
	for _, a := range Accessories {
		tx.existing[a.Name] = true
	}

	warned, err := insertAccessories(seedContext(tx))
	require.NoError(t, err)
	assert.Zero(t, warned)
	assert.Empty(t, tx.execs)
}

func TestSeedLicensesSkipsExistingRows(t *testing.T) {
	tx := &recordingTx{existing: map[string]bool{}}
	for _, l := range Licenses {
		tx.existing[l.Key] = true
	}

	warned, err := insertLicenses(seedContext(tx))
	require.NoError(t, err)
	assert.Zero(t, warned)
	assert.Empty(t, tx.execs)
}

func TestSeedZabbixVMsBatchesMissingRows(t *testing.T) {
	tx := &recordingTx{existing: map[string]bool{}}

	warned, err := insertZabbixVMs(seedContext(tx))
	require.NoError(t, err)
	assert.Zero(t, warned)
	require.Len(t, tx.execs, 1)
	assert.Equal(t, len(ZabbixVMs), strings.Count(tx.execs[0], "($"), "one tuple per missing vm")
}

func TestSeedZabbixVMsSkipsExistingRows(t *testing.T) {
	tx := &recordingTx{existing: map[string]bool{}}
	for _, v := range ZabbixVMs {
		tx.existing[v.Name] = true
	}

	warned, err := insertZabbixVMs(seedContext(tx))
	require.NoError(t, err)
	assert.Zero(t, warned)
	assert.Empty(t, tx.execs)
}

func TestSeedActivityLogsSkipsExistingRows(t *testing.T) {
	tx := &recordingTx{existing: map[string]bool{}}
	for _, l := range ActivityLogs {
		tx.existing[l.Action] = true
	}

	warned, err := insertActivityLogs(seedContext(tx))
	require.NoError(t, err)
	assert.Zero(t, warned)
	assert.Empty(t, tx.execs)
}

func TestSeedBitLockerKeysSkipUnresolvedAssets(t *testing.T) {
	tx := &recordingTx{existing: map[string]bool{}}

	warned, err := insertBitLockerKeys(seedContext(tx))
	require.NoError(t, err)
	// every key references an asset; the lookup misses, so nothing is stored
	assert.Equal(t, len(BitLockerKeys), warned)
	assert.Empty(t, tx.execs)
}

func TestSeedBitLockerKeysSkipExistingRows(t *testing.T) {
	tx := &recordingTx{existing: map[string]bool{}}
	for _, k := range BitLockerKeys {
		tx.existing[k.RecoveryKey] = true
	}

	warned, err := insertBitLockerKeys(seedContext(tx))
	require.NoError(t, err)
	assert.Zero(t, warned)
	assert.Empty(t, tx.execs)
}
