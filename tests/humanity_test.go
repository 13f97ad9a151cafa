package tests

import (
	"path"
	"testing"

	"github.com/freespeech-dapp/freespeech-contract/common"
	"github.com/freespeech-dapp/freespeech-contract/humanity"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const humanityPath = "../humanity"

func deployHumanityContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, humanityPath,
		path.Join(humanityPath, "config.yml"))

	e.DeployContract(t, c, nil)
	return c.Hash
}

func newHumanityInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	h := deployHumanityContract(t, e)
	return e.CommitteeInvoker(h)
}

func TestHumanity_Register(t *testing.T) {
	c := newHumanityInvoker(t)

	user := c.NewAccount(t)
	userHash := user.ScriptHash()

	c.Invoke(t, false, "isHumanVerified", userHash)

	cUser := c.WithSigners(user)
	cUser.InvokeFail(t, common.ErrCommitteeWitnessFailed, "register", userHash)

	h := c.Invoke(t, stackitem.Null{}, "register", userHash)
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "HumanRegistered", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(userHash.BytesBE()),
	}), aer.Events[0].Item)

	c.Invoke(t, true, "isHumanVerified", userHash)
	c.InvokeFail(t, humanity.ErrAlreadyRegistered, "register", userHash)
}

func TestHumanity_Unregister(t *testing.T) {
	c := newHumanityInvoker(t)

	user := c.NewAccount(t)
	userHash := user.ScriptHash()

	c.InvokeFail(t, humanity.ErrNotRegistered, "unregister", userHash)

	c.Invoke(t, stackitem.Null{}, "register", userHash)

	cUser := c.WithSigners(user)
	cUser.InvokeFail(t, common.ErrCommitteeWitnessFailed, "unregister", userHash)

	h := c.Invoke(t, stackitem.Null{}, "unregister", userHash)
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "HumanUnregistered", aer.Events[0].Name)

	c.Invoke(t, false, "isHumanVerified", userHash)
	c.InvokeFail(t, humanity.ErrNotRegistered, "unregister", userHash)
}

func TestHumanity_Version(t *testing.T) {
	c := newHumanityInvoker(t)
	c.Invoke(t, int64(common.Version), "version")
}
