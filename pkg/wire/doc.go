// Package wire converts between the JSON documents exchanged with the BitPay
// REST API and the typed model objects in pkg/models.
//
// The API speaks lowerCamelCase keys ("buyerProvidedInfo", "notificationURL");
// models store fields under canonical snake_case names ("buyer_provided_info",
// "notification_url"). The conversion is mechanical and invertible, so a model
// populated from a response renders back to the same keys it arrived with.
//
// # Schemas
//
// Every model declares a Schema: a table mapping each known field name to a
// coercion hint. The hint tells Populate how to interpret the incoming JSON
// value:
//
//	KindScalar    store the value unchanged (strings, numbers, booleans, null)
//	KindModel     recurse into a nested model of the declared type
//	KindModelList recurse into each element of an array, preserving order
//	KindMap       keep a JSON object as a raw map, no model promotion
//
// Keys with no schema entry are skipped without error; the API adds fields
// over time and old SDK versions must keep parsing newer responses.
//
// # Populating and rendering
//
// Populate walks a decoded JSON object and fills a model:
//
//	inv := &invoice.Invoice{}
//	err := wire.Populate(inv, doc)
//
// Render walks a model and emits only the fields that were explicitly set,
// in the order they were first set. Unset fields are absent from the output,
// never emitted as zero values; a field explicitly set to null is emitted
// as null.
//
//	body := wire.Render(inv)
//
// # Shape mismatches
//
// When a hint declares KindModel, KindModelList or KindMap but the incoming
// value has a different JSON shape, Populate fails fast with a
// *ShapeMismatchError naming the field. This is uniform across all models.
//
// # Thread safety
//
// Schemas are package-level read-only tables and are safe for concurrent
// reads. Individual model instances are not synchronized; do not share one
// instance across goroutines while mutating it.
package wire
