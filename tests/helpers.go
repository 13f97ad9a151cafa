package tests

import (
	"math/rand"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

func randomBytes(n int) []byte {
	a := make([]byte, n)
	rand.Read(a) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return a
}

// randomContentRef returns an IPFS-like CIDv0 string. The ledger treats
// content references as opaque, any non-empty string works.
func randomContentRef() string {
	return "Qm" + base58.Encode(randomBytes(32))
}

// advanceChain adds the given number of empty blocks. Single-node chains
// advance block time by 1 ms per block, so this moves contract time forward
// by the same number of milliseconds.
func advanceChain(t *testing.T, c *neotest.ContractInvoker, blocks int) {
	for i := 0; i < blocks; i++ {
		c.AddNewBlock(t)
	}
}

func gasBalance(t *testing.T, c *neotest.ContractInvoker, acc util.Uint160) int64 {
	gasInvoker := c.CommitteeInvoker(c.NativeHash(t, nativenames.Gas))
	res, err := gasInvoker.TestInvoke(t, "balanceOf", acc)
	require.NoError(t, err)
	return res.Top().BigInt().Int64()
}

// findEvent returns the single notification with the given name. GAS transfers
// made by ledger methods emit their own Transfer notifications, so events are
// looked up by name instead of position.
func findEvent(t *testing.T, aer *state.AppExecResult, name string) state.NotificationEvent {
	var (
		found state.NotificationEvent
		n     int
	)
	for _, ev := range aer.Events {
		if ev.Name == name {
			found = ev
			n++
		}
	}
	require.Equal(t, 1, n, "expected exactly one %s notification", name)
	return found
}
