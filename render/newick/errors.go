// SPDX-License-Identifier: MIT
package newick

import "errors"

// ErrUnknownOutlier indicates a requested outlier label matches no leaf.
var ErrUnknownOutlier = errors.New("newick: unknown outlier label")
