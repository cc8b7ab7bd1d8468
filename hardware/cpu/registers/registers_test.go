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

package registers_test

import (
	"testing"

	"github.com/gopher8080/gopher8080/hardware/cpu/registers"
	"github.com/gopher8080/gopher8080/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "B")
	test.ExpectSuccess(t, r.IsZero())
	test.ExpectFailure(t, r.IsNegative())
	test.ExpectEquality(t, r.String(), "B=00")

	r.Load(0x80)
	test.ExpectEquality(t, r.Value(), 0x80)
	test.ExpectSuccess(t, r.IsNegative())
	test.ExpectFailure(t, r.IsZero())
	test.ExpectEquality(t, r.Label(), "B")
}

func TestPair(t *testing.T) {
	b := registers.NewRegister(0x12, "B")
	c := registers.NewRegister(0x34, "C")
	bc := registers.NewPair("BC", &b, &c)

	test.ExpectEquality(t, bc.Value(), 0x1234)
	test.ExpectEquality(t, bc.String(), "BC=1234")

	// the pair is a view. changes to the registers are seen through the pair
	// and changes to the pair are seen in the registers
	b.Load(0xab)
	test.ExpectEquality(t, bc.Value(), 0xab34)

	bc.Load(0xbeef)
	test.ExpectEquality(t, b.Value(), 0xbe)
	test.ExpectEquality(t, c.Value(), 0xef)
	test.ExpectEquality(t, bc.Hi().Label(), "B")
	test.ExpectEquality(t, bc.Lo().Label(), "C")
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0xfffe)
	pc.Add(3)
	test.ExpectEquality(t, pc.Address(), 0x0001)
	pc.Load(0x0100)
	test.ExpectEquality(t, pc.String(), "0100")
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0x0001)
	sp.Subtract(2)
	test.ExpectEquality(t, sp.Address(), 0xffff)
	sp.Add(2)
	test.ExpectEquality(t, sp.Address(), 0x0001)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.Value(), 0x02)
	test.ExpectEquality(t, sr.String(), "sz-a-p-c")

	sr.Sign = true
	sr.Carry = true
	test.ExpectEquality(t, sr.Value(), 0x83)
	test.ExpectEquality(t, sr.String(), "Sz-a-p-C")

	// every packed value survives a round trip once the reserved bits are
	// normalised
	for v := 0; v <= 0xff; v++ {
		sr.FromValue(uint8(v))
		test.ExpectEquality(t, sr.Value(), uint8(v)&0xd5|0x02, v)
	}

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), 0x02)
}

func TestSetSZP(t *testing.T) {
	var sr registers.StatusRegister

	sr.SetSZP(0x00)
	test.ExpectSuccess(t, sr.Zero)
	test.ExpectFailure(t, sr.Sign)
	test.ExpectSuccess(t, sr.Parity)

	sr.SetSZP(0x80)
	test.ExpectFailure(t, sr.Zero)
	test.ExpectSuccess(t, sr.Sign)
	test.ExpectFailure(t, sr.Parity)

	sr.SetSZP(0x03)
	test.ExpectSuccess(t, sr.Parity)

	// SetSZP leaves the carry flags alone
	sr.Carry = true
	sr.AuxCarry = true
	sr.SetSZP(0xff)
	test.ExpectSuccess(t, sr.Carry)
	test.ExpectSuccess(t, sr.AuxCarry)
}
