/*
Humanity contract is the identity-verification collaborator of the
freespeech contract.

It keeps a committee-operated registry of addresses confirmed to belong to
real humans, in the spirit of Proof of Humanity. The freespeech contract
queries isHumanVerified synchronously when an address asks to be marked
verified; how addresses get into the registry is an off-chain process and is
of no concern to the ledger.

# Contract notifications

HumanRegistered notification.

	HumanRegistered:
	  - name: user
	    type: Hash160

HumanUnregistered notification.

	HumanUnregistered:
	  - name: user
	    type: Hash160
*/
package humanity
