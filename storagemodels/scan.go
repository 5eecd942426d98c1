/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

// ScanParams defines parameters for a bounded, filtered table scan.
type ScanParams struct {
	// TableName is the target table.
	TableName string
	// FilterExpression is an optional filter; empty means match all.
	FilterExpression string
	// Limit caps the number of returned entities. Values <= 0 mean no cap.
	Limit int32
}
