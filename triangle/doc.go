// Package triangle counts which side-length triples can form a triangle.
//
// A triple (a, b, c) is valid when every pair of sides sums to strictly
// more than the remaining side. Input is whitespace-separated integers,
// three per line, read either across rows or down columns in groups of
// three lines.
package triangle
