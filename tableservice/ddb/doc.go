/*
Package ddb provides a DynamoDB implementation of the TableService
collaborator.

Each bound table uses a string partition key attribute "PK" and a string
sort key attribute "RK". Scalar entity properties map to native
attribute types (S, N, BOOL, B); Guid and DateTime values are stored as
strings, and date-time detection on the way back is heuristic (full
RFC3339 shape only). Attribute shapes outside the scalar set, such as
maps or lists written by other producers, round-trip through the
explicit unsupported arm via attributevalue.

Filter expressions given to Scan are compiled from the tablebind filter
syntax into native DynamoDB filter expressions with deduplicated #n/:v
placeholders. DynamoDB applies its page limit before filtering, so Scan
pages until the requested number of matches has been collected.
*/
package ddb
