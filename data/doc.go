/*
Package data implements the canonical XRP ledger binary codec and the
transaction signing pipeline built on it.

A transaction is modelled as a TxObject, a mapping from field name to
typed value. The type registry (the static field definition table) maps
every name to a (type code, field code) pair and defines the canonical
serialization order: type code ascending, then field code ascending.
Serialization is fully determined by the field set; insertion order
never matters. This is consensus critical: a signature covers the exact
unsigned byte form, and any deviation produces a different transaction
hash.

On the wire every field is a header encoding the (type code, field code)
pair, followed by the value. Variable length fields carry a three tier
length prefix: one byte up to 192, two bytes up to 12480, three bytes up
to 918744. Nested objects and arrays recurse and close with end markers.

Signing is domain separated. The signature is computed over

	SHA512Half(HP_TRANSACTION_SIGN:unsigned bytes)

and the canonical transaction hash over

	SHA512Half(HP_TRANSACTION_ID:signed bytes)

where the prefixes are the four byte 'STX' and 'TXN' tags.

Everything in this package is a pure transform over immutable inputs.
The registry is built once at init and read only afterwards, so any
number of pipelines can run concurrently without coordination.
*/
package data
