/*
Package filter parses and evaluates the comparison-expression subset used
in binding filter strings, e.g. "Status eq 'open' and Age gt 5".

Supported: the six comparison keywords eq/ne/gt/ge/lt/le over a property
name (or PartitionKey/RowKey) and a literal, combined with and/or/not
and parentheses. Literals are single-quoted strings ('' escapes a
quote), numbers, and true/false.

The parsed tree serves two consumers: the in-memory table service
evaluates it directly against entities, and the DynamoDB-backed service
compiles it into a native filter expression.
*/
package filter
