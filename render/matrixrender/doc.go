// Package matrixrender emits the expanded post-join distance matrix
// (leaves plus synthesized internal nodes) in the same CSV layout as the
// distmatrix parser's input, per spec §4.3. Rows of internal nodes begin
// with their "#k" name, which the parser reads as a comment line.
package matrixrender
