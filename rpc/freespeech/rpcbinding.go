// Package freespeech contains RPC wrappers for FreeSpeech contract.
package freespeech

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// FreespeechPost is a contract-specific freespeech.Post type used by its methods.
type FreespeechPost struct {
	ID *big.Int
	ContentRef string
	Author util.Uint160
	CreatedAt *big.Int
	TipAmount *big.Int
	Disabled bool
}

// FreespeechReportInfo is a contract-specific freespeech.ReportInfo type used by its methods.
type FreespeechReportInfo struct {
	ID *big.Int
	PostID *big.Int
	Reporter util.Uint160
	Reported util.Uint160
	CreatedAt *big.Int
	UpVotes *big.Int
	DownVotes *big.Int
	Finished bool
}

// AccountVerifiedEvent represents "AccountVerified" event emitted by the contract.
type AccountVerifiedEvent struct {
	User util.Uint160
}

// AccountActivatedEvent represents "AccountActivated" event emitted by the contract.
type AccountActivatedEvent struct {
	User util.Uint160
	Amount *big.Int
}

// AccountDeactivatedEvent represents "AccountDeactivated" event emitted by the contract.
type AccountDeactivatedEvent struct {
	User util.Uint160
	Beneficiary util.Uint160
	Amount *big.Int
}

// PostCreatedEvent represents "PostCreated" event emitted by the contract.
type PostCreatedEvent struct {
	ID *big.Int
	ContentRef string
	Author util.Uint160
}

// PostTippedEvent represents "PostTipped" event emitted by the contract.
type PostTippedEvent struct {
	ID *big.Int
	Author util.Uint160
	Tipper util.Uint160
	Amount *big.Int
	TipAmount *big.Int
}

// PostReportedEvent represents "PostReported" event emitted by the contract.
type PostReportedEvent struct {
	ID *big.Int
	PostID *big.Int
	Reporter util.Uint160
}

// VotedEvent represents "Voted" event emitted by the contract.
type VotedEvent struct {
	ReportID *big.Int
	Voter util.Uint160
	Upvote bool
}

// ReportResolvedEvent represents "ReportResolved" event emitted by the contract.
type ReportResolvedEvent struct {
	ReportID *big.Int
	Winner util.Uint160
	Amount *big.Int
	UpVotes *big.Int
	DownVotes *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// ActivationPrice invokes `activationPrice` method of contract.
func (c *ContractReader) ActivationPrice(user util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "activationPrice", user))
}

// GetPost invokes `getPost` method of contract.
func (c *ContractReader) GetPost(id *big.Int) (*FreespeechPost, error) {
	return itemToFreespeechPost(unwrap.Item(c.invoker.Call(c.hash, "getPost", id)))
}

// GetReport invokes `getReport` method of contract.
func (c *ContractReader) GetReport(id *big.Int) (*FreespeechReportInfo, error) {
	return itemToFreespeechReportInfo(unwrap.Item(c.invoker.Call(c.hash, "getReport", id)))
}

// HasActiveAccount invokes `hasActiveAccount` method of contract.
func (c *ContractReader) HasActiveAccount(user util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasActiveAccount", user))
}

// IsInvolved invokes `isInvolved` method of contract.
func (c *ContractReader) IsInvolved(user util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isInvolved", user))
}

// IsVerified invokes `isVerified` method of contract.
func (c *ContractReader) IsVerified(user util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isVerified", user))
}

// PenaltyCount invokes `penaltyCount` method of contract.
func (c *ContractReader) PenaltyCount(user util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "penaltyCount", user))
}

// PostAuthor invokes `postAuthor` method of contract.
func (c *ContractReader) PostAuthor(id *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "postAuthor", id))
}

// PostCount invokes `postCount` method of contract.
func (c *ContractReader) PostCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "postCount"))
}

// PostDisabled invokes `postDisabled` method of contract.
func (c *ContractReader) PostDisabled(id *big.Int) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "postDisabled", id))
}

// PostTipAmount invokes `postTipAmount` method of contract.
func (c *ContractReader) PostTipAmount(id *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "postTipAmount", id))
}

// Posts invokes `posts` method of contract.
func (c *ContractReader) Posts() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "posts"))
}

// PostsExpanded is similar to Posts (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) PostsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "posts", _numOfIteratorItems))
}

// ReportCount invokes `reportCount` method of contract.
func (c *ContractReader) ReportCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "reportCount"))
}

// ReportDownVotes invokes `reportDownVotes` method of contract.
func (c *ContractReader) ReportDownVotes(id *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "reportDownVotes", id))
}

// ReportFinished invokes `reportFinished` method of contract.
func (c *ContractReader) ReportFinished(id *big.Int) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "reportFinished", id))
}

// ReportUpVotes invokes `reportUpVotes` method of contract.
func (c *ContractReader) ReportUpVotes(id *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "reportUpVotes", id))
}

// StakeOf invokes `stakeOf` method of contract.
func (c *ContractReader) StakeOf(user util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "stakeOf", user))
}

// UserLastPostID invokes `userLastPostID` method of contract.
func (c *ContractReader) UserLastPostID(user util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "userLastPostID", user))
}

// UserPostCount invokes `userPostCount` method of contract.
func (c *ContractReader) UserPostCount(user util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "userPostCount", user))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// ActivateAccount creates a transaction invoking `activateAccount` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ActivateAccount(user util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "activateAccount", user, amount)
}

// ActivateAccountTransaction creates a transaction invoking `activateAccount` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ActivateAccountTransaction(user util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "activateAccount", user, amount)
}

// ActivateAccountUnsigned creates a transaction invoking `activateAccount` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ActivateAccountUnsigned(user util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "activateAccount", nil, user, amount)
}

// DeactivateAccount creates a transaction invoking `deactivateAccount` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DeactivateAccount(user util.Uint160, beneficiary util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deactivateAccount", user, beneficiary)
}

// DeactivateAccountTransaction creates a transaction invoking `deactivateAccount` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DeactivateAccountTransaction(user util.Uint160, beneficiary util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deactivateAccount", user, beneficiary)
}

// DeactivateAccountUnsigned creates a transaction invoking `deactivateAccount` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DeactivateAccountUnsigned(user util.Uint160, beneficiary util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deactivateAccount", nil, user, beneficiary)
}

// GetReportWinner creates a transaction invoking `getReportWinner` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) GetReportWinner(caller util.Uint160, reportID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "getReportWinner", caller, reportID)
}

// GetReportWinnerTransaction creates a transaction invoking `getReportWinner` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) GetReportWinnerTransaction(caller util.Uint160, reportID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "getReportWinner", caller, reportID)
}

// GetReportWinnerUnsigned creates a transaction invoking `getReportWinner` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) GetReportWinnerUnsigned(caller util.Uint160, reportID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "getReportWinner", nil, caller, reportID)
}

// GetVerified creates a transaction invoking `getVerified` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) GetVerified(user util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "getVerified", user)
}

// GetVerifiedTransaction creates a transaction invoking `getVerified` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) GetVerifiedTransaction(user util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "getVerified", user)
}

// GetVerifiedUnsigned creates a transaction invoking `getVerified` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) GetVerifiedUnsigned(user util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "getVerified", nil, user)
}

// Report creates a transaction invoking `report` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Report(reporter util.Uint160, postID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "report", reporter, postID)
}

// ReportTransaction creates a transaction invoking `report` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReportTransaction(reporter util.Uint160, postID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "report", reporter, postID)
}

// ReportUnsigned creates a transaction invoking `report` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReportUnsigned(reporter util.Uint160, postID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "report", nil, reporter, postID)
}

// TipPostOwner creates a transaction invoking `tipPostOwner` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TipPostOwner(tipper util.Uint160, postID *big.Int, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "tipPostOwner", tipper, postID, amount)
}

// TipPostOwnerTransaction creates a transaction invoking `tipPostOwner` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TipPostOwnerTransaction(tipper util.Uint160, postID *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "tipPostOwner", tipper, postID, amount)
}

// TipPostOwnerUnsigned creates a transaction invoking `tipPostOwner` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TipPostOwnerUnsigned(tipper util.Uint160, postID *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "tipPostOwner", nil, tipper, postID, amount)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// UploadPost creates a transaction invoking `uploadPost` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UploadPost(author util.Uint160, contentRef string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "uploadPost", author, contentRef)
}

// UploadPostTransaction creates a transaction invoking `uploadPost` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UploadPostTransaction(author util.Uint160, contentRef string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "uploadPost", author, contentRef)
}

// UploadPostUnsigned creates a transaction invoking `uploadPost` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UploadPostUnsigned(author util.Uint160, contentRef string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "uploadPost", nil, author, contentRef)
}

// Vote creates a transaction invoking `vote` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Vote(voter util.Uint160, reportID *big.Int, upvote bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "vote", voter, reportID, upvote)
}

// VoteTransaction creates a transaction invoking `vote` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) VoteTransaction(voter util.Uint160, reportID *big.Int, upvote bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "vote", voter, reportID, upvote)
}

// VoteUnsigned creates a transaction invoking `vote` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) VoteUnsigned(voter util.Uint160, reportID *big.Int, upvote bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "vote", nil, voter, reportID, upvote)
}

// itemToFreespeechPost converts stack item into *FreespeechPost.
func itemToFreespeechPost(item stackitem.Item, err error) (*FreespeechPost, error) {
	if err != nil {
		return nil, err
	}
	var res = new(FreespeechPost)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of FreespeechPost from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *FreespeechPost) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.ContentRef, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ContentRef: %w", err)
	}

	index++
	res.Author, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Author: %w", err)
	}

	index++
	res.CreatedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CreatedAt: %w", err)
	}

	index++
	res.TipAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TipAmount: %w", err)
	}

	index++
	res.Disabled, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Disabled: %w", err)
	}

	return nil
}

// itemToFreespeechReportInfo converts stack item into *FreespeechReportInfo.
func itemToFreespeechReportInfo(item stackitem.Item, err error) (*FreespeechReportInfo, error) {
	if err != nil {
		return nil, err
	}
	var res = new(FreespeechReportInfo)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of FreespeechReportInfo from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *FreespeechReportInfo) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 8 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.PostID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PostID: %w", err)
	}

	index++
	res.Reporter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Reporter: %w", err)
	}

	index++
	res.Reported, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Reported: %w", err)
	}

	index++
	res.CreatedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CreatedAt: %w", err)
	}

	index++
	res.UpVotes, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field UpVotes: %w", err)
	}

	index++
	res.DownVotes, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DownVotes: %w", err)
	}

	index++
	res.Finished, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Finished: %w", err)
	}

	return nil
}
