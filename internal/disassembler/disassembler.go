package disassembler

import (
	"fmt"
	"strings"

	"github.com/mapamarco/naive-gbe/internal/mmu"
)

// Decode produces the trace line for the instruction at addr: the
// address, a fixed-width dump of the instruction bytes, and the mnemonic
// with comma separated operands.
//
//	0000  31 fe ff     ld    sp, d16
func Decode(m *mmu.MMU, addr uint16) string {
	var out strings.Builder

	opcode := m.Read(addr)
	op := ops[opcode]
	if opcode == 0xCB {
		op = opsCB[m.Read(addr+1)]
	}

	fmt.Fprintf(&out, "%04x  ", addr)

	for i := uint8(0); i < op.size; i++ {
		fmt.Fprintf(&out, "%02x ", m.Read(addr+uint16(i)))
	}
	out.WriteString(strings.Repeat(" ", int(4+(3-op.size)*3)))

	fmt.Fprintf(&out, "%-6s", op.tokens[0])

	for i, operand := range op.tokens[1:] {
		out.WriteString(operand)
		if i < len(op.tokens)-2 {
			out.WriteString(", ")
		} else {
			out.WriteString(" ")
		}
	}

	return out.String()
}
