/*
Package mvault provides the primitive types shared by all packages of the
threshold-authorization vault: principal addresses and the key-value store
interfaces the engine persists its state through.

The vault itself lives in the multisig package. Signature recovery is in
crypto, the btree-backed store in store, and overflow-checked value
arithmetic in coin.
*/
package mvault
