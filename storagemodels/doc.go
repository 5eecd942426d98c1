/*
Package storagemodels defines the data structures used throughout tablebind.

Key Types:

Entity:
The typed storage model — a partition key, a row key, and an ordered set
of named properties, each carrying exactly one discriminated Property
member (String, Int32, Int64, Bool, Guid, Double, DateTime, Binary, or
the explicit Unsupported arm):

	e := storagemodels.NewEntity("west", "42")
	e.SetProperty("total", &storagemodels.DoubleProperty{Value: 9.5})

Record:
The schema-less boundary model — an ordered mapping from name to a
closed Value variant (String, Integer, Boolean, Guid, Float, Raw).
Records marshal to compact JSON preserving field order, and unmarshal
from JSON objects with integral numbers decoding as Integer and
fractional ones as Float.

ScanParams:
Parameters for the collaborator's bounded filtered scan.
*/
package storagemodels
