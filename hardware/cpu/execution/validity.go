// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

package execution

import (
	"github.com/gopher8080/gopher8080/curated"
)

// InvalidResult is the pattern for errors returned by IsValid().
const InvalidResult = "execution: invalid result: %v"

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if r.Defn == nil {
		return curated.Errorf(InvalidResult, "no instruction decoded")
	}

	if !r.Final {
		return curated.Errorf(InvalidResult, "execution not finalised")
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf(InvalidResult, curated.Errorf("unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes))
	}

	if r.BranchSuccess {
		if !r.Defn.IsBranch() {
			return curated.Errorf(InvalidResult, curated.Errorf("branch taken by non-branching opcode %02x [%s]", r.Defn.OpCode, r.Defn.Mnemonic))
		}
		if r.Cycles != r.Defn.Cycles.Taken {
			return curated.Errorf(InvalidResult, curated.Errorf("number of cycles wrong for opcode %02x [%s] (%d instead of %d)", r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, r.Defn.Cycles.Taken))
		}
	} else if r.Cycles != r.Defn.Cycles.Base {
		return curated.Errorf(InvalidResult, curated.Errorf("number of cycles wrong for opcode %02x [%s] (%d instead of %d)", r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, r.Defn.Cycles.Base))
	}

	return nil
}
