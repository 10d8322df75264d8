/*
Package multisig implements a threshold-authorization vault.

A fixed set of owners jointly controls a pool of value and the right to
invoke arbitrary external actions. Any action is modeled as a transaction
(destination, value, payload, nonce), identified by its content hash. A
transaction executes exactly once, and only after at least the required
number of current owners confirmed it, either by direct calls or by
off-band signatures recovered to owner identities.

Administrative changes (adding and removing owners, changing the
threshold) are not a separate path. They are ordinary transactions whose
destination is the vault's own address and whose payload is a governance
message, so funds and governance flow through one authorization pipeline.

All state lives in a key-value store owned exclusively by the Vault and is
mutated only through its methods. Execution commits the executed flag
before invoking the external effect, so a re-entrant call triggered by the
effect observes the transaction as already executed.
*/
package multisig
