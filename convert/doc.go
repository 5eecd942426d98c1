/*
Package convert translates between schema-less records and typed storage
entities at the binding boundary.

ToEntity infers the narrowest storage type per record value and honors
embedded partitionKey/rowKey overrides (case-insensitive, stripped from
the property set, settings-resolved). ToRecord is the inverse total
mapping and always appends the PartitionKey and RowKey fields last.

For the type set {String, Int32, Boolean, Guid, Double} the two
directions compose to the identity on keys and property values.
*/
package convert
