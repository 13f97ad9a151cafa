/*
FreeSpeech contract is a staked-reputation content ledger.

Participants stake a refundable GAS deposit to gain posting rights. Addresses
confirmed by the Proof of Humanity registry (see the humanity contract) pay a
tenth of the regular price, which makes Sybil-resistant identities cheaper to
operate without excluding unverified ones. Active accounts publish opaque
content references, tip each other (tips are routed directly to the author
and never rest in the contract) and open dispute cases over posts.

A report is resolved by a timed majority vote. During the voting window every
active account except the two involved parties may cast exactly one up or
down vote. After voting closes there is a grace window during which any
active account may trigger resolution: an upvote majority disables the post
and forfeits the full stake of the reported author to the reporter, anything
else (ties included) leaves state untouched. A report that nobody resolves
within the grace window lapses silently: it stays formally unfinished, no
funds move and both parties stop being involved.

While involved in an open report an address can neither open another report,
be reported again, nor deactivate its account. Deactivation is also delayed
by the post cooldown of the author's last post.

# Contract notifications

AccountVerified notification. Produced when an address is confirmed against
the Proof of Humanity registry.

	AccountVerified:
	  - name: user
	    type: Hash160

AccountActivated notification. Produced when an account stakes its deposit.

	AccountActivated:
	  - name: user
	    type: Hash160
	  - name: amount
	    type: Integer

AccountDeactivated notification. Produced when an account is deactivated and
its deposit refunded.

	AccountDeactivated:
	  - name: user
	    type: Hash160
	  - name: beneficiary
	    type: Hash160
	  - name: amount
	    type: Integer

PostCreated notification.

	PostCreated:
	  - name: id
	    type: Integer
	  - name: contentRef
	    type: String
	  - name: author
	    type: Hash160

PostTipped notification. The amount is the single tip, tipAmount the post's
running accumulator.

	PostTipped:
	  - name: id
	    type: Integer
	  - name: author
	    type: Hash160
	  - name: tipper
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: tipAmount
	    type: Integer

PostReported notification. Produced when a dispute case is opened.

	PostReported:
	  - name: id
	    type: Integer
	  - name: postId
	    type: Integer
	  - name: reporter
	    type: Hash160

Voted notification.

	Voted:
	  - name: reportId
	    type: Integer
	  - name: voter
	    type: Hash160
	  - name: upvote
	    type: Boolean

ReportResolved notification. The amount is the forfeited stake transferred
to the reporter, 0 when the report failed.

	ReportResolved:
	  - name: reportId
	    type: Integer
	  - name: winner
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: upVotes
	    type: Integer
	  - name: downVotes
	    type: Integer
*/
package freespeech
