// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package chain implements a generic singly linked chain of nodes.
//
// A chain is grown only at its tail: Push walks the successor links from the
// receiver and attaches a new terminal node. Successors are owned by exactly
// one predecessor and cannot be set from outside the package, so a chain
// built through this API never contains a cycle.
//
// Nodes are not safe for concurrent mutation. The holder of the root is the
// sole mutator.
package chain
