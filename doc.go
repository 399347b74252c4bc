/*
Package ordtree offers sorted sets of unique, comparable values on top of the
append-only B-tree of package btree.

Sets

A Set is a thin value-style facade around a btree.Tree. Elements are added
one by one and are kept in ascending order; adding an element which is
already present is a no-op. Sets iterate in both directions and may be
deep-copied.

	s := ordtree.SetOf(2, 3, 5, 1, 4, 6, 2)
	for x := range s.Items() {
		fmt.Println(x)
	}

The underlying tree never splits or rebalances nodes. Inserting sorted input
one by one therefore grows a chain. When all elements are known up front,
clients should stage them in a Builder, which inserts them median-first and
yields a shallow tree.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ordtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}

// OrdTreeError is an error type for the ordtree module
type OrdTreeError string

func (e OrdTreeError) Error() string {
	return string(e)
}

// ErrSetCompleted signals that a set builder has already completed a set and
// it's illegal to further add elements.
const ErrSetCompleted = OrdTreeError("forbidden to add elements; set has been completed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = OrdTreeError("illegal arguments")
