package freespeech

import (
	"github.com/freespeech-dapp/freespeech-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Account stores per-address ledger state. Accounts are created lazily
	// on first interaction and are never removed, only reset to inactive.
	Account struct {
		// Confirmed by the Proof of Humanity registry.
		Verified bool
		// Has a staked deposit and posting rights.
		Active bool
		// Staked deposit, 0 for inactive accounts.
		Staked int
		// Number of lost report resolutions.
		Penalties int
		// IDs of posts published by the account, oldest first.
		Posts []int
	}

	// Post is a single published content reference.
	Post struct {
		ID         int
		ContentRef string
		Author     interop.Hash160
		CreatedAt  int
		TipAmount  int
		// One-way flag, set by a successful report resolution.
		Disabled bool
	}

	// ReportInfo is a dispute case over a post. Reporter and Reported stay
	// locked out of other reports while the case is open.
	ReportInfo struct {
		ID        int
		PostID    int
		Reporter  interop.Hash160
		Reported  interop.Hash160
		CreatedAt int
		UpVotes   int
		DownVotes int
		Finished  bool
	}
)

const (
	// PriceUnverified is the stake required to activate an account whose
	// address has not been confirmed by the Proof of Humanity registry,
	// 0.1 GAS.
	PriceUnverified = 10_000_000
	// PriceVerified is the stake required from a confirmed human address,
	// a tenth of PriceUnverified.
	PriceVerified = PriceUnverified / 10

	// DefaultPostCooldown is the production delay between two posts of one
	// author and between the last post and account deactivation, in
	// milliseconds.
	DefaultPostCooldown = 60_000
	// DefaultVotingWindow is the production time span during which votes
	// on a report are accepted, in milliseconds.
	DefaultVotingWindow = 60_000
	// DefaultGraceWindow is the production time span after voting closes
	// during which resolution may still be triggered, in milliseconds.
	DefaultGraceWindow = 60_000

	accountPrefix = 'a'
	postPrefix    = 'p'
	reportPrefix  = 'r'
	votePrefix    = 'v'

	postCounterKey   = 'P'
	reportCounterKey = 'R'

	humanityContractKey = 'h'
	postCooldownKey     = 'c'
	votingWindowKey     = 'w'
	graceWindowKey      = 'g'
)

// Failure kinds. Every operation rejects an invalid request with one of
// these messages and leaves the state untouched.
const (
	ErrAlreadyVerified  = "address is already verified"
	ErrNotHumanVerified = "address is not verified by the Proof of Humanity registry"

	ErrAlreadyActive    = "account is already active"
	ErrInvalidDeposit   = "invalid deposit amount"
	ErrAccountNotActive = "account is not active"
	ErrReportInProgress = "account is involved in an open report"
	ErrPostCooldown     = "post cooldown has not ended yet"

	ErrEmptyContent  = "content reference is empty"
	ErrInvalidPostID = "invalid post id"
	ErrNoPosts       = "account has no posts"

	ErrSelfTip           = "cannot tip own post"
	ErrPostDisabled      = "post is disabled"
	ErrAuthorNotActive   = "post author is not active"
	ErrNonPositiveAmount = "non positive amount number"

	ErrSelfReport       = "cannot report own post"
	ErrReporterInvolved = "reporter is already involved in an open report"
	ErrReportedInvolved = "reported author is already involved in an open report"

	ErrInvalidReportID     = "invalid report id"
	ErrVotingEnded         = "voting has ended"
	ErrReporterCannotVote  = "reporter cannot vote on own report"
	ErrReportedCannotVote  = "reported author cannot vote"
	ErrAlreadyVoted        = "already voted"
	ErrVotingNotEnded      = "voting has not ended yet"
	ErrRevealWindowExpired = "resolution window has expired"
	ErrAlreadyResolved     = "report is already resolved"
)

// nolint:deadcode,unused
func _deploy(data interface{}, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		humanity     interop.Hash160
		postCooldown int
		votingWindow int
		graceWindow  int
	})

	if len(args.humanity) != interop.Hash160Len {
		panic("incorrect length of humanity contract script hash")
	}

	storage.Put(ctx, humanityContractKey, args.humanity)

	// zero window arguments select production defaults
	putWindow(ctx, postCooldownKey, args.postCooldown, DefaultPostCooldown)
	putWindow(ctx, votingWindowKey, args.votingWindow, DefaultVotingWindow)
	putWindow(ctx, graceWindowKey, args.graceWindow, DefaultGraceWindow)

	runtime.Log("freespeech contract initialized")
}

func putWindow(ctx storage.Context, key int, value, def int) {
	if value < 0 {
		panic("negative time window")
	}
	if value == 0 {
		value = def
	}
	storage.Put(ctx, key, value)
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data interface{}) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("freespeech contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// The only payments the contract holds are stake deposits pulled by
// ActivateAccount, marked with the stake transfer details; everything else
// is rejected.
func OnNEP17Payment(from interop.Hash160, amount int, data interface{}) {
	caller := runtime.GetCallingScriptHash()
	if !common.BytesEqual(caller, interop.Hash160(gas.Hash)) {
		common.AbortWithMessage("freespeech contract accepts GAS only")
	}

	if data == nil {
		common.AbortWithMessage("freespeech contract accepts stake deposits only")
	}

	marker := data.([]byte)
	if !common.BytesEqual(marker, common.StakeTransferDetails()) {
		common.AbortWithMessage("freespeech contract accepts stake deposits only")
	}
}

// GetVerified marks the user address as verified after confirming it with
// the Proof of Humanity registry. Fails if the address is already verified
// or the registry does not know it.
func GetVerified(user interop.Hash160) {
	common.CheckOwnerWitness(user)

	ctx := storage.GetContext()
	acc := getAccount(ctx, user)
	if acc.Verified {
		panic(ErrAlreadyVerified)
	}

	humanity := storage.Get(ctx, humanityContractKey).(interop.Hash160)
	isHuman := contract.Call(humanity, "isHumanVerified", contract.ReadOnly, user).(bool)
	if !isHuman {
		panic(ErrNotHumanVerified)
	}

	acc.Verified = true
	setAccount(ctx, user, acc)

	runtime.Notify("AccountVerified", user)
}

// IsVerified returns true if the user address has been confirmed by the
// Proof of Humanity registry via GetVerified.
func IsVerified(user interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return getAccount(ctx, user).Verified
}

// ActivationPrice returns the deposit the user must stake to activate an
// account: PriceVerified for verified addresses, PriceUnverified otherwise.
func ActivationPrice(user interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return activationPrice(getAccount(ctx, user))
}

func activationPrice(acc Account) int {
	if acc.Verified {
		return PriceVerified
	}
	return PriceUnverified
}

// ActivateAccount stakes exactly the activation price of the user and grants
// posting rights. The deposit is pulled from the user to the contract
// account, so the carrier transaction must be signed by the user. Any amount
// other than the exact price is rejected.
func ActivateAccount(user interop.Hash160, amount int) {
	common.CheckOwnerWitness(user)

	ctx := storage.GetContext()
	acc := getAccount(ctx, user)
	if acc.Active {
		panic(ErrAlreadyActive)
	}
	if amount != activationPrice(acc) {
		panic(ErrInvalidDeposit)
	}

	self := runtime.GetExecutingScriptHash()
	if !gas.Transfer(user, self, amount, common.StakeTransferDetails()) {
		panic("failed to transfer stake deposit")
	}

	acc.Active = true
	acc.Staked = amount
	setAccount(ctx, user, acc)

	runtime.Notify("AccountActivated", user, amount)
}

// HasActiveAccount returns true if the user has a staked deposit and may
// post, tip, report and vote.
func HasActiveAccount(user interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return getAccount(ctx, user).Active
}

// StakeOf returns the currently staked deposit of the user, 0 for inactive
// accounts.
func StakeOf(user interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return getAccount(ctx, user).Staked
}

// PenaltyCount returns the number of report resolutions the user has lost.
func PenaltyCount(user interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return getAccount(ctx, user).Penalties
}

// DeactivateAccount refunds the staked deposit to the beneficiary (which may
// be the user itself) and revokes posting rights. It is rejected while the
// user is involved in an open report or before the post cooldown of the last
// post has elapsed, closing the spam-then-flee path.
func DeactivateAccount(user, beneficiary interop.Hash160) {
	common.CheckOwnerWitness(user)

	ctx := storage.GetContext()
	acc := getAccount(ctx, user)
	if !acc.Active {
		panic(ErrAccountNotActive)
	}
	if isInvolved(ctx, user) {
		panic(ErrReportInProgress)
	}

	if len(acc.Posts) > 0 {
		lastPost := getPost(ctx, acc.Posts[len(acc.Posts)-1])
		cooldown := common.GetWithDefault(ctx, postCooldownKey, DefaultPostCooldown)
		if runtime.GetTime() < lastPost.CreatedAt+cooldown {
			panic(ErrPostCooldown)
		}
	}

	refund := acc.Staked
	acc.Active = false
	acc.Staked = 0
	setAccount(ctx, user, acc)

	self := runtime.GetExecutingScriptHash()
	if !gas.Transfer(self, beneficiary, refund, common.RefundTransferDetails()) {
		panic("failed to refund stake deposit")
	}

	runtime.Notify("AccountDeactivated", user, beneficiary, refund)
}

// UploadPost appends a new post with the given opaque content reference. The
// reference is stored verbatim, only non-emptiness is checked. One author
// may post at most once per post cooldown.
func UploadPost(author interop.Hash160, contentRef string) int {
	common.CheckOwnerWitness(author)

	ctx := storage.GetContext()
	acc := getAccount(ctx, author)
	if !acc.Active {
		panic(ErrAccountNotActive)
	}
	if len(contentRef) == 0 {
		panic(ErrEmptyContent)
	}

	now := runtime.GetTime()
	if len(acc.Posts) > 0 {
		lastPost := getPost(ctx, acc.Posts[len(acc.Posts)-1])
		cooldown := common.GetWithDefault(ctx, postCooldownKey, DefaultPostCooldown)
		if now < lastPost.CreatedAt+cooldown {
			panic(ErrPostCooldown)
		}
	}

	id := getCounter(ctx, postCounterKey)
	post := Post{
		ID:         id,
		ContentRef: contentRef,
		Author:     author,
		CreatedAt:  now,
		TipAmount:  0,
		Disabled:   false,
	}
	common.SetSerialized(ctx, postKey(id), post)
	storage.Put(ctx, postCounterKey, id+1)

	acc.Posts = append(acc.Posts, id)
	setAccount(ctx, author, acc)

	runtime.Notify("PostCreated", id, contentRef, author)

	return id
}

// PostCount returns the total number of posts ever created. Post IDs are
// 0-based and never reused.
func PostCount() int {
	ctx := storage.GetReadOnlyContext()
	return getCounter(ctx, postCounterKey)
}

// GetPost returns the post with the given id.
func GetPost(id int) Post {
	ctx := storage.GetReadOnlyContext()
	return getPost(ctx, id)
}

// PostAuthor returns the author address of the post with the given id.
func PostAuthor(id int) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getPost(ctx, id).Author
}

// PostTipAmount returns the total amount of tips the post has accumulated.
func PostTipAmount(id int) int {
	ctx := storage.GetReadOnlyContext()
	return getPost(ctx, id).TipAmount
}

// PostDisabled returns true if the post has been disabled by a successful
// report resolution.
func PostDisabled(id int) bool {
	ctx := storage.GetReadOnlyContext()
	return getPost(ctx, id).Disabled
}

// Posts returns an iterator over all posts in the order of their ids.
func Posts() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{postPrefix}, storage.ValuesOnly|storage.DeserializeValues)
}

// UserPostCount returns the number of posts published by the user.
func UserPostCount(user interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return len(getAccount(ctx, user).Posts)
}

// UserLastPostID returns the id of the most recent post of the user.
func UserLastPostID(user interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	acc := getAccount(ctx, user)
	if len(acc.Posts) == 0 {
		panic(ErrNoPosts)
	}
	return acc.Posts[len(acc.Posts)-1]
}

// TipPostOwner routes the amount of GAS directly from the tipper to the
// author of the post and records it in the post's tip accumulator. The
// carrier transaction must be signed by the tipper. Disabled posts and posts
// of deactivated authors cannot be tipped.
func TipPostOwner(tipper interop.Hash160, postID, amount int) {
	common.CheckOwnerWitness(tipper)

	ctx := storage.GetContext()
	post := getPost(ctx, postID)
	if post.Disabled {
		panic(ErrPostDisabled)
	}
	if common.BytesEqual(tipper, post.Author) {
		panic(ErrSelfTip)
	}
	if !getAccount(ctx, post.Author).Active {
		panic(ErrAuthorNotActive)
	}
	if amount <= 0 {
		panic(ErrNonPositiveAmount)
	}

	post.TipAmount += amount
	common.SetSerialized(ctx, postKey(postID), post)

	if !gas.Transfer(tipper, post.Author, amount, common.TipTransferDetails(postID)) {
		panic("failed to transfer tip")
	}

	runtime.Notify("PostTipped", postID, post.Author, tipper, amount, post.TipAmount)
}

// Report opens a dispute case over the post. Neither the reporter nor the
// post author may already be involved in another open report; both
// involvement checks and the case creation happen within one transaction, so
// of two competing reports over overlapping participants at most one can
// succeed.
func Report(reporter interop.Hash160, postID int) int {
	common.CheckOwnerWitness(reporter)

	ctx := storage.GetContext()
	if !getAccount(ctx, reporter).Active {
		panic(ErrAccountNotActive)
	}

	post := getPost(ctx, postID)
	if post.Disabled {
		panic(ErrPostDisabled)
	}
	if common.BytesEqual(reporter, post.Author) {
		panic(ErrSelfReport)
	}
	if !getAccount(ctx, post.Author).Active {
		panic(ErrAuthorNotActive)
	}
	if isInvolved(ctx, reporter) {
		panic(ErrReporterInvolved)
	}
	if isInvolved(ctx, post.Author) {
		panic(ErrReportedInvolved)
	}

	id := getCounter(ctx, reportCounterKey)
	report := ReportInfo{
		ID:        id,
		PostID:    postID,
		Reporter:  reporter,
		Reported:  post.Author,
		CreatedAt: runtime.GetTime(),
		UpVotes:   0,
		DownVotes: 0,
		Finished:  false,
	}
	common.SetSerialized(ctx, reportKey(id), report)
	storage.Put(ctx, reportCounterKey, id+1)

	runtime.Notify("PostReported", id, postID, reporter)

	return id
}

// ReportCount returns the total number of reports ever created. Report IDs
// are 0-based and never reused.
func ReportCount() int {
	ctx := storage.GetReadOnlyContext()
	return getCounter(ctx, reportCounterKey)
}

// GetReport returns the report with the given id.
func GetReport(id int) ReportInfo {
	ctx := storage.GetReadOnlyContext()
	return getReport(ctx, id)
}

// ReportUpVotes returns the number of votes supporting the report.
func ReportUpVotes(id int) int {
	ctx := storage.GetReadOnlyContext()
	return getReport(ctx, id).UpVotes
}

// ReportDownVotes returns the number of votes against the report.
func ReportDownVotes(id int) int {
	ctx := storage.GetReadOnlyContext()
	return getReport(ctx, id).DownVotes
}

// ReportFinished returns true if the report has been resolved by
// GetReportWinner. A lapsed report stays unfinished forever.
func ReportFinished(id int) bool {
	ctx := storage.GetReadOnlyContext()
	return getReport(ctx, id).Finished
}

// IsInvolved returns true if the user is a party of any open report, as
// either the reporter or the reported author.
func IsInvolved(user interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return isInvolved(ctx, user)
}

// Vote accepts one up or down vote on an open report within its voting
// window. The two involved parties cannot vote, and every other active
// account votes at most once.
func Vote(voter interop.Hash160, reportID int, upvote bool) {
	common.CheckOwnerWitness(voter)

	ctx := storage.GetContext()
	report := getReport(ctx, reportID)

	votingWindow := common.GetWithDefault(ctx, votingWindowKey, DefaultVotingWindow)
	if runtime.GetTime() >= report.CreatedAt+votingWindow {
		panic(ErrVotingEnded)
	}
	if !getAccount(ctx, voter).Active {
		panic(ErrAccountNotActive)
	}
	if common.BytesEqual(voter, report.Reporter) {
		panic(ErrReporterCannotVote)
	}
	if common.BytesEqual(voter, report.Reported) {
		panic(ErrReportedCannotVote)
	}

	vKey := voteKey(reportID, voter)
	if storage.Get(ctx, vKey) != nil {
		panic(ErrAlreadyVoted)
	}

	if upvote {
		report.UpVotes = report.UpVotes + 1 // neo-go#953
	} else {
		report.DownVotes = report.DownVotes + 1
	}
	common.SetSerialized(ctx, reportKey(reportID), report)
	storage.Put(ctx, vKey, []byte{1})

	runtime.Notify("Voted", reportID, voter, upvote)
}

// GetReportWinner resolves a report once its voting window has closed and
// before the grace window runs out, and returns the winning party. If
// upvotes outnumber downvotes, the report succeeds: the post is disabled and
// the full stake of the reported author is forfeited to the reporter, the
// author gets a penalty mark and becomes inactive. On a tie or a downvote
// majority the report fails with no economic effect. Either way the report
// is finished exactly once. Past the grace window the report lapses: this
// call is rejected, no funds ever move and both parties simply stop being
// involved.
func GetReportWinner(caller interop.Hash160, reportID int) interop.Hash160 {
	common.CheckOwnerWitness(caller)

	ctx := storage.GetContext()
	if !getAccount(ctx, caller).Active {
		panic(ErrAccountNotActive)
	}

	report := getReport(ctx, reportID)
	if report.Finished {
		panic(ErrAlreadyResolved)
	}

	now := runtime.GetTime()
	votingWindow := common.GetWithDefault(ctx, votingWindowKey, DefaultVotingWindow)
	graceWindow := common.GetWithDefault(ctx, graceWindowKey, DefaultGraceWindow)
	if now < report.CreatedAt+votingWindow {
		panic(ErrVotingNotEnded)
	}
	if now >= report.CreatedAt+votingWindow+graceWindow {
		panic(ErrRevealWindowExpired)
	}

	report.Finished = true
	common.SetSerialized(ctx, reportKey(reportID), report)

	var (
		winner interop.Hash160
		amount int
	)

	if report.UpVotes > report.DownVotes {
		winner = report.Reporter

		post := getPost(ctx, report.PostID)
		post.Disabled = true
		common.SetSerialized(ctx, postKey(report.PostID), post)

		reported := getAccount(ctx, report.Reported)
		amount = reported.Staked
		reported.Staked = 0
		reported.Active = false
		reported.Penalties = reported.Penalties + 1 // neo-go#953
		setAccount(ctx, report.Reported, reported)

		self := runtime.GetExecutingScriptHash()
		if !gas.Transfer(self, report.Reporter, amount, common.AwardTransferDetails(reportID)) {
			panic("failed to transfer forfeited stake")
		}
	} else {
		// ties favor the accused
		winner = report.Reported
	}

	runtime.Notify("ReportResolved", reportID, winner, amount, report.UpVotes, report.DownVotes)

	return winner
}

func getAccount(ctx storage.Context, user interop.Hash160) Account {
	data := storage.Get(ctx, accountKey(user))
	if data != nil {
		return std.Deserialize(data.([]byte)).(Account)
	}

	return Account{
		Verified:  false,
		Active:    false,
		Staked:    0,
		Penalties: 0,
		Posts:     []int{},
	}
}

func setAccount(ctx storage.Context, user interop.Hash160, acc Account) {
	common.SetSerialized(ctx, accountKey(user), acc)
}

func getPost(ctx storage.Context, id int) Post {
	if id < 0 || id >= getCounter(ctx, postCounterKey) {
		panic(ErrInvalidPostID)
	}

	data := storage.Get(ctx, postKey(id))
	return std.Deserialize(data.([]byte)).(Post)
}

func getReport(ctx storage.Context, id int) ReportInfo {
	if id < 0 || id >= getCounter(ctx, reportCounterKey) {
		panic(ErrInvalidReportID)
	}

	data := storage.Get(ctx, reportKey(id))
	return std.Deserialize(data.([]byte)).(ReportInfo)
}

// isInvolved reports whether the user is a party of any open report. It is
// always derived from the live report sequence, there is no separate flag
// that could drift. A report is open until it is finished or its voting and
// grace windows have fully elapsed.
func isInvolved(ctx storage.Context, user interop.Hash160) bool {
	votingWindow := common.GetWithDefault(ctx, votingWindowKey, DefaultVotingWindow)
	graceWindow := common.GetWithDefault(ctx, graceWindowKey, DefaultGraceWindow)
	now := runtime.GetTime()

	count := getCounter(ctx, reportCounterKey)
	for id := 0; id < count; id++ {
		report := getReport(ctx, id)
		if report.Finished {
			continue
		}
		if now >= report.CreatedAt+votingWindow+graceWindow {
			continue
		}
		if common.BytesEqual(user, report.Reporter) || common.BytesEqual(user, report.Reported) {
			return true
		}
	}

	return false
}

func getCounter(ctx storage.Context, key int) int {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(int)
	}

	return 0
}

func accountKey(user interop.Hash160) []byte {
	return append([]byte{accountPrefix}, user...)
}

func postKey(id int) []byte {
	var buf interface{} = id
	return append([]byte{postPrefix}, buf.([]byte)...)
}

func reportKey(id int) []byte {
	var buf interface{} = id
	return append([]byte{reportPrefix}, buf.([]byte)...)
}

func voteKey(reportID int, voter interop.Hash160) []byte {
	var buf interface{} = reportID
	key := append([]byte{votePrefix}, buf.([]byte)...)
	return append(key, voter...)
}
