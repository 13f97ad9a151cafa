package humanity

import (
	"github.com/freespeech-dapp/freespeech-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	registeredPrefix = 'h'
)

const (
	// ErrAlreadyRegistered is thrown by Register for addresses the registry
	// already knows.
	ErrAlreadyRegistered = "address is already registered"
	// ErrNotRegistered is thrown by Unregister for unknown addresses.
	ErrNotRegistered = "address is not registered"
)

// nolint:deadcode,unused
func _deploy(data interface{}, isUpdate bool) {
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	runtime.Log("humanity contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data interface{}) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("humanity contract updated")
}

// Register adds the user address to the registry of confirmed human
// addresses. It can be invoked only by committee.
func Register(user interop.Hash160) {
	common.CheckCommitteeWitness()

	ctx := storage.GetContext()
	key := registryKey(user)
	if storage.Get(ctx, key) != nil {
		panic(ErrAlreadyRegistered)
	}

	storage.Put(ctx, key, []byte{1})
	runtime.Notify("HumanRegistered", user)
}

// Unregister removes the user address from the registry. It can be invoked
// only by committee.
func Unregister(user interop.Hash160) {
	common.CheckCommitteeWitness()

	ctx := storage.GetContext()
	key := registryKey(user)
	if storage.Get(ctx, key) == nil {
		panic(ErrNotRegistered)
	}

	storage.Delete(ctx, key)
	runtime.Notify("HumanUnregistered", user)
}

// IsHumanVerified returns true if the user address is currently present in
// the registry. The freespeech contract queries it synchronously from
// getVerified.
func IsHumanVerified(user interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, registryKey(user)) != nil
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func registryKey(user interop.Hash160) []byte {
	return append([]byte{registeredPrefix}, user...)
}
