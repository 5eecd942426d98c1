/*
Package tablebind binds schema-less JSON-like records to a typed,
partition/row-keyed wide-column table store, in both directions,
resolving {name} key and filter templates against per-invocation
binding data.

A binding is declared once, with a table name, optional partition-key,
row-key, and filter templates, a result cap, and a direction. Per
invocation, templates bind against a context map, a second pass resolves
%name% configuration tokens, and the orchestrator dispatches through a
pluggable table-service collaborator.

Basic usage:

	svc := memory.New()
	binding, _ := tablebind.NewBinding(tablebind.Declaration{
	    TableName:    "Orders",
	    PartitionKey: "{region}",
	    RowKey:       "{id}",
	}, svc, settings.Env{})

	var out bytes.Buffer
	found, _ := binding.Read(ctx, tablebind.Context{"region": "west", "id": "42"}, &out)
	// out: {"total":9.5,"PartitionKey":"west","RowKey":"42"}

Write bindings accept one or many records; an embedded partitionKey or
rowKey entry (any casing) overrides the resolved keys and is stripped
before storage. Reads with both keys resolved fetch a single entity;
anything less runs a bounded, filtered scan rendered as a JSON array.

Subpackages: template and settings implement the two substitution
passes, convert the record/entity translation, filter the scan filter
language, and tableservice the storage collaborator with in-memory and
DynamoDB implementations.
*/
package tablebind
