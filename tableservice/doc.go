/*
Package tableservice defines the table-storage collaborator consumed by
the binding orchestrator: append one entity, point-read one entity by
partition and row key, and run a bounded filtered scan through a bound
table handle.

Two implementations ship with tablebind:

  - tableservice/memory: a thread-safe in-memory service, the reference
    implementation used by the unit tests
  - tableservice/ddb: a DynamoDB-backed service

The orchestrator issues no retries and owns no connection state; both
belong to the implementation behind this interface.
*/
package tableservice
