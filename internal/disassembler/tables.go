// Package disassembler decodes LR35902 opcodes into the trace lines used
// by the debugger surface. Decoding is a pure function of memory contents:
// it never advances the program counter and never executes anything.
package disassembler

// operation describes one opcode for the decoder: the number of bytes the
// instruction occupies, its nominal cycle cost and the mnemonic tokens in
// canonical DMG syntax.
type operation struct {
	size   uint8
	cycles uint8
	tokens []string
}

var ops = [0x100]operation{
	0x00: {1, 4, []string{"nop"}},
	0x01: {3, 12, []string{"ld", "bc", "d16"}},
	0x02: {1, 8, []string{"ld", "(bc)", "a"}},
	0x03: {1, 8, []string{"inc", "bc"}},
	0x04: {1, 4, []string{"inc", "b"}},
	0x05: {1, 4, []string{"dec", "b"}},
	0x06: {2, 8, []string{"ld", "b", "d8"}},
	0x07: {1, 4, []string{"rlca"}},
	0x08: {3, 20, []string{"ld", "(a16)", "sp"}},
	0x09: {1, 8, []string{"add", "hl", "bc"}},
	0x0a: {1, 8, []string{"ld", "a", "(bc)"}},
	0x0b: {1, 8, []string{"dec", "bc"}},
	0x0c: {1, 4, []string{"inc", "c"}},
	0x0d: {1, 4, []string{"dec", "c"}},
	0x0e: {2, 8, []string{"ld", "c", "d8"}},
	0x0f: {1, 4, []string{"rrca"}},
	0x10: {2, 4, []string{"stop"}},
	0x11: {3, 12, []string{"ld", "de", "d16"}},
	0x12: {1, 8, []string{"ld", "(de)", "a"}},
	0x13: {1, 8, []string{"inc", "de"}},
	0x14: {1, 4, []string{"inc", "d"}},
	0x15: {1, 4, []string{"dec", "d"}},
	0x16: {2, 8, []string{"ld", "d", "d8"}},
	0x17: {1, 4, []string{"rla"}},
	0x18: {2, 8, []string{"jr", "r8"}},
	0x19: {1, 8, []string{"add", "hl", "de"}},
	0x1a: {1, 8, []string{"ld", "a", "(de)"}},
	0x1b: {1, 8, []string{"dec", "de"}},
	0x1c: {1, 4, []string{"inc", "e"}},
	0x1d: {1, 4, []string{"dec", "e"}},
	0x1e: {2, 8, []string{"ld", "e", "d8"}},
	0x1f: {1, 4, []string{"rra"}},
	0x20: {2, 8, []string{"jr", "nz", "r8"}},
	0x21: {3, 12, []string{"ld", "hl", "d16"}},
	0x22: {1, 8, []string{"ld", "(hl+)", "a"}},
	0x23: {1, 8, []string{"inc", "hl"}},
	0x24: {1, 4, []string{"inc", "h"}},
	0x25: {1, 4, []string{"dec", "h"}},
	0x26: {2, 8, []string{"ld", "h", "d8"}},
	0x27: {1, 4, []string{"daa"}},
	0x28: {2, 8, []string{"jr", "z", "r8"}},
	0x29: {1, 8, []string{"add", "hl", "hl"}},
	0x2a: {1, 8, []string{"ld", "a", "(hl+)"}},
	0x2b: {1, 8, []string{"dec", "hl"}},
	0x2c: {1, 4, []string{"inc", "l"}},
	0x2d: {1, 4, []string{"dec", "l"}},
	0x2e: {2, 8, []string{"ld", "l", "d8"}},
	0x2f: {1, 4, []string{"cpl"}},
	0x30: {2, 8, []string{"jr", "nc", "r8"}},
	0x31: {3, 12, []string{"ld", "sp", "d16"}},
	0x32: {1, 8, []string{"ld", "(hl-)", "a"}},
	0x33: {1, 8, []string{"inc", "sp"}},
	0x34: {1, 12, []string{"inc", "(hl)"}},
	0x35: {1, 12, []string{"dec", "(hl)"}},
	0x36: {2, 12, []string{"ld", "(hl)", "d8"}},
	0x37: {1, 4, []string{"scf"}},
	0x38: {2, 8, []string{"jr", "c", "r8"}},
	0x39: {1, 8, []string{"add", "hl", "sp"}},
	0x3a: {1, 8, []string{"ld", "a", "(hl-)"}},
	0x3b: {1, 8, []string{"dec", "sp"}},
	0x3c: {1, 4, []string{"inc", "a"}},
	0x3d: {1, 4, []string{"dec", "a"}},
	0x3e: {2, 8, []string{"ld", "a", "d8"}},
	0x3f: {1, 4, []string{"ccf"}},
	0x40: {1, 4, []string{"ld", "b", "b"}},
	0x41: {1, 4, []string{"ld", "b", "c"}},
	0x42: {1, 4, []string{"ld", "b", "d"}},
	0x43: {1, 4, []string{"ld", "b", "e"}},
	0x44: {1, 4, []string{"ld", "b", "h"}},
	0x45: {1, 4, []string{"ld", "b", "l"}},
	0x46: {1, 8, []string{"ld", "b", "(hl)"}},
	0x47: {1, 4, []string{"ld", "b", "a"}},
	0x48: {1, 4, []string{"ld", "c", "b"}},
	0x49: {1, 4, []string{"ld", "c", "c"}},
	0x4a: {1, 4, []string{"ld", "c", "d"}},
	0x4b: {1, 4, []string{"ld", "c", "e"}},
	0x4c: {1, 4, []string{"ld", "c", "h"}},
	0x4d: {1, 4, []string{"ld", "c", "l"}},
	0x4e: {1, 8, []string{"ld", "c", "(hl)"}},
	0x4f: {1, 4, []string{"ld", "c", "a"}},
	0x50: {1, 4, []string{"ld", "d", "b"}},
	0x51: {1, 4, []string{"ld", "d", "c"}},
	0x52: {1, 4, []string{"ld", "d", "d"}},
	0x53: {1, 4, []string{"ld", "d", "e"}},
	0x54: {1, 4, []string{"ld", "d", "h"}},
	0x55: {1, 4, []string{"ld", "d", "l"}},
	0x56: {1, 8, []string{"ld", "d", "(hl)"}},
	0x57: {1, 4, []string{"ld", "d", "a"}},
	0x58: {1, 4, []string{"ld", "e", "b"}},
	0x59: {1, 4, []string{"ld", "e", "c"}},
	0x5a: {1, 4, []string{"ld", "e", "d"}},
	0x5b: {1, 4, []string{"ld", "e", "e"}},
	0x5c: {1, 4, []string{"ld", "e", "h"}},
	0x5d: {1, 4, []string{"ld", "e", "l"}},
	0x5e: {1, 8, []string{"ld", "e", "(hl)"}},
	0x5f: {1, 4, []string{"ld", "e", "a"}},
	0x60: {1, 4, []string{"ld", "h", "b"}},
	0x61: {1, 4, []string{"ld", "h", "c"}},
	0x62: {1, 4, []string{"ld", "h", "d"}},
	0x63: {1, 4, []string{"ld", "h", "e"}},
	0x64: {1, 4, []string{"ld", "h", "h"}},
	0x65: {1, 4, []string{"ld", "h", "l"}},
	0x66: {1, 8, []string{"ld", "h", "(hl)"}},
	0x67: {1, 4, []string{"ld", "h", "a"}},
	0x68: {1, 4, []string{"ld", "l", "b"}},
	0x69: {1, 4, []string{"ld", "l", "c"}},
	0x6a: {1, 4, []string{"ld", "l", "d"}},
	0x6b: {1, 4, []string{"ld", "l", "e"}},
	0x6c: {1, 4, []string{"ld", "l", "h"}},
	0x6d: {1, 4, []string{"ld", "l", "l"}},
	0x6e: {1, 8, []string{"ld", "l", "(hl)"}},
	0x6f: {1, 4, []string{"ld", "l", "a"}},
	0x70: {1, 8, []string{"ld", "(hl)", "b"}},
	0x71: {1, 8, []string{"ld", "(hl)", "c"}},
	0x72: {1, 8, []string{"ld", "(hl)", "d"}},
	0x73: {1, 8, []string{"ld", "(hl)", "e"}},
	0x74: {1, 8, []string{"ld", "(hl)", "h"}},
	0x75: {1, 8, []string{"ld", "(hl)", "l"}},
	0x76: {1, 4, []string{"halt"}},
	0x77: {1, 8, []string{"ld", "(hl)", "a"}},
	0x78: {1, 4, []string{"ld", "a", "b"}},
	0x79: {1, 4, []string{"ld", "a", "c"}},
	0x7a: {1, 4, []string{"ld", "a", "d"}},
	0x7b: {1, 4, []string{"ld", "a", "e"}},
	0x7c: {1, 4, []string{"ld", "a", "h"}},
	0x7d: {1, 4, []string{"ld", "a", "l"}},
	0x7e: {1, 8, []string{"ld", "a", "(hl)"}},
	0x7f: {1, 4, []string{"ld", "a", "a"}},
	0x80: {1, 4, []string{"add", "a", "b"}},
	0x81: {1, 4, []string{"add", "a", "c"}},
	0x82: {1, 4, []string{"add", "a", "d"}},
	0x83: {1, 4, []string{"add", "a", "e"}},
	0x84: {1, 4, []string{"add", "a", "h"}},
	0x85: {1, 4, []string{"add", "a", "l"}},
	0x86: {1, 8, []string{"add", "a", "(hl)"}},
	0x87: {1, 4, []string{"add", "a", "a"}},
	0x88: {1, 4, []string{"adc", "a", "b"}},
	0x89: {1, 4, []string{"adc", "a", "c"}},
	0x8a: {1, 4, []string{"adc", "a", "d"}},
	0x8b: {1, 4, []string{"adc", "a", "e"}},
	0x8c: {1, 4, []string{"adc", "a", "h"}},
	0x8d: {1, 4, []string{"adc", "a", "l"}},
	0x8e: {1, 8, []string{"adc", "a", "(hl)"}},
	0x8f: {1, 4, []string{"adc", "a", "a"}},
	0x90: {1, 4, []string{"sub", "b"}},
	0x91: {1, 4, []string{"sub", "c"}},
	0x92: {1, 4, []string{"sub", "d"}},
	0x93: {1, 4, []string{"sub", "e"}},
	0x94: {1, 4, []string{"sub", "h"}},
	0x95: {1, 4, []string{"sub", "l"}},
	0x96: {1, 8, []string{"sub", "(hl)"}},
	0x97: {1, 4, []string{"sub", "a"}},
	0x98: {1, 4, []string{"sbc", "a", "b"}},
	0x99: {1, 4, []string{"sbc", "a", "c"}},
	0x9a: {1, 4, []string{"sbc", "a", "d"}},
	0x9b: {1, 4, []string{"sbc", "a", "e"}},
	0x9c: {1, 4, []string{"sbc", "a", "h"}},
	0x9d: {1, 4, []string{"sbc", "a", "l"}},
	0x9e: {1, 8, []string{"sbc", "a", "(hl)"}},
	0x9f: {1, 4, []string{"sbc", "a", "a"}},
	0xa0: {1, 4, []string{"and", "b"}},
	0xa1: {1, 4, []string{"and", "c"}},
	0xa2: {1, 4, []string{"and", "d"}},
	0xa3: {1, 4, []string{"and", "e"}},
	0xa4: {1, 4, []string{"and", "h"}},
	0xa5: {1, 4, []string{"and", "l"}},
	0xa6: {1, 8, []string{"and", "(hl)"}},
	0xa7: {1, 4, []string{"and", "a"}},
	0xa8: {1, 4, []string{"xor", "b"}},
	0xa9: {1, 4, []string{"xor", "c"}},
	0xaa: {1, 4, []string{"xor", "d"}},
	0xab: {1, 4, []string{"xor", "e"}},
	0xac: {1, 4, []string{"xor", "h"}},
	0xad: {1, 4, []string{"xor", "l"}},
	0xae: {1, 8, []string{"xor", "(hl)"}},
	0xaf: {1, 4, []string{"xor", "a"}},
	0xb0: {1, 4, []string{"or", "b"}},
	0xb1: {1, 4, []string{"or", "c"}},
	0xb2: {1, 4, []string{"or", "d"}},
	0xb3: {1, 4, []string{"or", "e"}},
	0xb4: {1, 4, []string{"or", "h"}},
	0xb5: {1, 4, []string{"or", "l"}},
	0xb6: {1, 8, []string{"or", "(hl)"}},
	0xb7: {1, 4, []string{"or", "a"}},
	0xb8: {1, 4, []string{"cp", "b"}},
	0xb9: {1, 4, []string{"cp", "c"}},
	0xba: {1, 4, []string{"cp", "d"}},
	0xbb: {1, 4, []string{"cp", "e"}},
	0xbc: {1, 4, []string{"cp", "h"}},
	0xbd: {1, 4, []string{"cp", "l"}},
	0xbe: {1, 8, []string{"cp", "(hl)"}},
	0xbf: {1, 4, []string{"cp", "a"}},
	0xc0: {1, 8, []string{"ret", "nz"}},
	0xc1: {1, 12, []string{"pop", "bc"}},
	0xc2: {3, 12, []string{"jp", "nz", "a16"}},
	0xc3: {3, 16, []string{"jp", "a16"}},
	0xc4: {3, 12, []string{"call", "nz", "a16"}},
	0xc5: {1, 16, []string{"push", "bc"}},
	0xc6: {2, 8, []string{"add", "a", "d8"}},
	0xc7: {1, 16, []string{"rst", "00h"}},
	0xc8: {1, 8, []string{"ret", "z"}},
	0xc9: {1, 16, []string{"ret"}},
	0xca: {3, 12, []string{"jp", "z", "a16"}},
	0xcb: {0, 0, []string{"prefix", "cb"}},
	0xcc: {3, 12, []string{"call", "z", "a16"}},
	0xcd: {3, 24, []string{"call", "a16"}},
	0xce: {2, 8, []string{"adc", "a", "d8"}},
	0xcf: {1, 16, []string{"rst", "08h"}},
	0xd0: {1, 8, []string{"ret", "nc"}},
	0xd1: {1, 12, []string{"pop", "de"}},
	0xd2: {3, 12, []string{"jp", "nc", "a16"}},
	0xd3: {1, 4, []string{"inv"}},
	0xd4: {3, 12, []string{"call", "nc", "a16"}},
	0xd5: {1, 16, []string{"push", "de"}},
	0xd6: {2, 8, []string{"sub", "d8"}},
	0xd7: {1, 16, []string{"rst", "10h"}},
	0xd8: {1, 8, []string{"ret", "c"}},
	0xd9: {1, 16, []string{"reti"}},
	0xda: {3, 12, []string{"jp", "c", "a16"}},
	0xdb: {1, 4, []string{"inv"}},
	0xdc: {3, 12, []string{"call", "c", "a16"}},
	0xdd: {1, 4, []string{"inv"}},
	0xde: {2, 8, []string{"sbc", "a", "d8"}},
	0xdf: {1, 16, []string{"rst", "18h"}},
	0xe0: {2, 12, []string{"ldh", "(a8)", "a"}},
	0xe1: {1, 12, []string{"pop", "hl"}},
	0xe2: {2, 8, []string{"ld", "(c)", "a"}},
	0xe3: {1, 4, []string{"inv"}},
	0xe4: {1, 4, []string{"inv"}},
	0xe5: {1, 16, []string{"push", "hl"}},
	0xe6: {1, 4, []string{"and", "d8"}},
	0xe7: {1, 16, []string{"rst", "20h"}},
	0xe8: {2, 16, []string{"add", "sp", "r8"}},
	0xe9: {1, 4, []string{"jp", "(hl)"}},
	0xea: {3, 16, []string{"ld", "(a16)", "a"}},
	0xeb: {1, 4, []string{"inv"}},
	0xec: {1, 4, []string{"inv"}},
	0xed: {1, 4, []string{"inv"}},
	0xee: {2, 8, []string{"xor", "d8"}},
	0xef: {1, 16, []string{"rst", "28h"}},
	0xf0: {2, 12, []string{"ldh", "a", "(a8)"}},
	0xf1: {1, 12, []string{"pop", "af"}},
	0xf2: {2, 8, []string{"ld", "a", "(c)"}},
	0xf3: {1, 4, []string{"di"}},
	0xf4: {1, 4, []string{"inv"}},
	0xf5: {1, 16, []string{"push", "af"}},
	0xf6: {2, 8, []string{"or", "d8"}},
	0xf7: {1, 16, []string{"rst", "30h"}},
	0xf8: {2, 12, []string{"ld", "hl", "sp+r8"}},
	0xf9: {1, 4, []string{"ld", "sp", "hl"}},
	0xfa: {3, 16, []string{"ld", "a", "(a16)"}},
	0xfb: {1, 4, []string{"ei"}},
	0xfc: {1, 4, []string{"inv"}},
	0xfd: {1, 4, []string{"inv"}},
	0xfe: {2, 8, []string{"cp", "d8"}},
	0xff: {1, 16, []string{"rst", "38h"}},
}

var opsCB = [0x100]operation{
	0x00: {2, 8, []string{"rlc", "b"}},
	0x01: {2, 8, []string{"rlc", "c"}},
	0x02: {2, 8, []string{"rlc", "d"}},
	0x03: {2, 8, []string{"rlc", "e"}},
	0x04: {2, 8, []string{"rlc", "h"}},
	0x05: {2, 8, []string{"rlc", "l"}},
	0x06: {2, 16, []string{"rlc", "(hl)"}},
	0x07: {2, 8, []string{"rlc", "a"}},
	0x08: {2, 8, []string{"rrc", "b"}},
	0x09: {2, 8, []string{"rrc", "c"}},
	0x0a: {2, 8, []string{"rrc", "d"}},
	0x0b: {2, 8, []string{"rrc", "e"}},
	0x0c: {2, 8, []string{"rrc", "h"}},
	0x0d: {2, 8, []string{"rrc", "l"}},
	0x0e: {2, 16, []string{"rrc", "(hl)"}},
	0x0f: {2, 8, []string{"rrc", "a"}},
	0x10: {2, 8, []string{"rl", "b"}},
	0x11: {2, 8, []string{"rl", "c"}},
	0x12: {2, 8, []string{"rl", "d"}},
	0x13: {2, 8, []string{"rl", "e"}},
	0x14: {2, 8, []string{"rl", "h"}},
	0x15: {2, 8, []string{"rl", "l"}},
	0x16: {2, 16, []string{"rl", "(hl)"}},
	0x17: {2, 8, []string{"rl", "a"}},
	0x18: {2, 8, []string{"rr", "b"}},
	0x19: {2, 8, []string{"rr", "c"}},
	0x1a: {2, 8, []string{"rr", "d"}},
	0x1b: {2, 8, []string{"rr", "e"}},
	0x1c: {2, 8, []string{"rr", "h"}},
	0x1d: {2, 8, []string{"rr", "l"}},
	0x1e: {2, 16, []string{"rr", "(hl)"}},
	0x1f: {2, 8, []string{"rr", "a"}},
	0x20: {2, 8, []string{"sla", "b"}},
	0x21: {2, 8, []string{"sla", "c"}},
	0x22: {2, 8, []string{"sla", "d"}},
	0x23: {2, 8, []string{"sla", "e"}},
	0x24: {2, 8, []string{"sla", "h"}},
	0x25: {2, 8, []string{"sla", "l"}},
	0x26: {2, 16, []string{"sla", "(hl)"}},
	0x27: {2, 8, []string{"sla", "a"}},
	0x28: {2, 8, []string{"sra", "b"}},
	0x29: {2, 8, []string{"sra", "c"}},
	0x2a: {2, 8, []string{"sra", "d"}},
	0x2b: {2, 8, []string{"sra", "e"}},
	0x2c: {2, 8, []string{"sra", "h"}},
	0x2d: {2, 8, []string{"sra", "l"}},
	0x2e: {2, 16, []string{"sra", "(hl)"}},
	0x2f: {2, 8, []string{"sra", "a"}},
	0x30: {2, 8, []string{"swap", "b"}},
	0x31: {2, 8, []string{"swap", "c"}},
	0x32: {2, 8, []string{"swap", "d"}},
	0x33: {2, 8, []string{"swap", "e"}},
	0x34: {2, 8, []string{"swap", "h"}},
	0x35: {2, 8, []string{"swap", "l"}},
	0x36: {2, 16, []string{"swap", "(hl)"}},
	0x37: {2, 8, []string{"swap", "a"}},
	0x38: {2, 8, []string{"srl", "b"}},
	0x39: {2, 8, []string{"srl", "c"}},
	0x3a: {2, 8, []string{"srl", "d"}},
	0x3b: {2, 8, []string{"srl", "e"}},
	0x3c: {2, 8, []string{"srl", "h"}},
	0x3d: {2, 8, []string{"srl", "l"}},
	0x3e: {2, 16, []string{"srl", "(hl)"}},
	0x3f: {2, 8, []string{"srl", "a"}},
	0x40: {2, 8, []string{"bit", "0", "b"}},
	0x41: {2, 8, []string{"bit", "0", "c"}},
	0x42: {2, 8, []string{"bit", "0", "d"}},
	0x43: {2, 8, []string{"bit", "0", "e"}},
	0x44: {2, 8, []string{"bit", "0", "h"}},
	0x45: {2, 8, []string{"bit", "0", "l"}},
	0x46: {2, 16, []string{"bit", "0", "(hl)"}},
	0x47: {2, 8, []string{"bit", "0", "a"}},
	0x48: {2, 8, []string{"bit", "1", "b"}},
	0x49: {2, 8, []string{"bit", "1", "c"}},
	0x4a: {2, 8, []string{"bit", "1", "d"}},
	0x4b: {2, 8, []string{"bit", "1", "e"}},
	0x4c: {2, 8, []string{"bit", "1", "h"}},
	0x4d: {2, 8, []string{"bit", "1", "l"}},
	0x4e: {2, 16, []string{"bit", "1", "(hl)"}},
	0x4f: {2, 8, []string{"bit", "1", "a"}},
	0x50: {2, 8, []string{"bit", "2", "b"}},
	0x51: {2, 8, []string{"bit", "2", "c"}},
	0x52: {2, 8, []string{"bit", "2", "d"}},
	0x53: {2, 8, []string{"bit", "2", "e"}},
	0x54: {2, 8, []string{"bit", "2", "h"}},
	0x55: {2, 8, []string{"bit", "2", "l"}},
	0x56: {2, 16, []string{"bit", "2", "(hl)"}},
	0x57: {2, 8, []string{"bit", "2", "a"}},
	0x58: {2, 8, []string{"bit", "3", "b"}},
	0x59: {2, 8, []string{"bit", "3", "c"}},
	0x5a: {2, 8, []string{"bit", "3", "d"}},
	0x5b: {2, 8, []string{"bit", "3", "e"}},
	0x5c: {2, 8, []string{"bit", "3", "h"}},
	0x5d: {2, 8, []string{"bit", "3", "l"}},
	0x5e: {2, 16, []string{"bit", "3", "(hl)"}},
	0x5f: {2, 8, []string{"bit", "3", "a"}},
	0x60: {2, 8, []string{"bit", "4", "b"}},
	0x61: {2, 8, []string{"bit", "4", "c"}},
	0x62: {2, 8, []string{"bit", "4", "d"}},
	0x63: {2, 8, []string{"bit", "4", "e"}},
	0x64: {2, 8, []string{"bit", "4", "h"}},
	0x65: {2, 8, []string{"bit", "4", "l"}},
	0x66: {2, 16, []string{"bit", "4", "(hl)"}},
	0x67: {2, 8, []string{"bit", "4", "a"}},
	0x68: {2, 8, []string{"bit", "5", "b"}},
	0x69: {2, 8, []string{"bit", "5", "c"}},
	0x6a: {2, 8, []string{"bit", "5", "d"}},
	0x6b: {2, 8, []string{"bit", "5", "e"}},
	0x6c: {2, 8, []string{"bit", "5", "h"}},
	0x6d: {2, 8, []string{"bit", "5", "l"}},
	0x6e: {2, 16, []string{"bit", "5", "(hl)"}},
	0x6f: {2, 8, []string{"bit", "5", "a"}},
	0x70: {2, 8, []string{"bit", "6", "b"}},
	0x71: {2, 8, []string{"bit", "6", "c"}},
	0x72: {2, 8, []string{"bit", "6", "d"}},
	0x73: {2, 8, []string{"bit", "6", "e"}},
	0x74: {2, 8, []string{"bit", "6", "h"}},
	0x75: {2, 8, []string{"bit", "6", "l"}},
	0x76: {2, 16, []string{"bit", "6", "(hl)"}},
	0x77: {2, 8, []string{"bit", "6", "a"}},
	0x78: {2, 8, []string{"bit", "7", "b"}},
	0x79: {2, 8, []string{"bit", "7", "c"}},
	0x7a: {2, 8, []string{"bit", "7", "d"}},
	0x7b: {2, 8, []string{"bit", "7", "e"}},
	0x7c: {2, 8, []string{"bit", "7", "h"}},
	0x7d: {2, 8, []string{"bit", "7", "l"}},
	0x7e: {2, 16, []string{"bit", "7", "(hl)"}},
	0x7f: {2, 8, []string{"bit", "7", "a"}},
	0x80: {2, 8, []string{"res", "0", "b"}},
	0x81: {2, 8, []string{"res", "0", "c"}},
	0x82: {2, 8, []string{"res", "0", "d"}},
	0x83: {2, 8, []string{"res", "0", "e"}},
	0x84: {2, 8, []string{"res", "0", "h"}},
	0x85: {2, 8, []string{"res", "0", "l"}},
	0x86: {2, 16, []string{"res", "0", "(hl)"}},
	0x87: {2, 8, []string{"res", "0", "a"}},
	0x88: {2, 8, []string{"res", "1", "b"}},
	0x89: {2, 8, []string{"res", "1", "c"}},
	0x8a: {2, 8, []string{"res", "1", "d"}},
	0x8b: {2, 8, []string{"res", "1", "e"}},
	0x8c: {2, 8, []string{"res", "1", "h"}},
	0x8d: {2, 8, []string{"res", "1", "l"}},
	0x8e: {2, 16, []string{"res", "1", "(hl)"}},
	0x8f: {2, 8, []string{"res", "1", "a"}},
	0x90: {2, 8, []string{"res", "2", "b"}},
	0x91: {2, 8, []string{"res", "2", "c"}},
	0x92: {2, 8, []string{"res", "2", "d"}},
	0x93: {2, 8, []string{"res", "2", "e"}},
	0x94: {2, 8, []string{"res", "2", "h"}},
	0x95: {2, 8, []string{"res", "2", "l"}},
	0x96: {2, 16, []string{"res", "2", "(hl)"}},
	0x97: {2, 8, []string{"res", "2", "a"}},
	0x98: {2, 8, []string{"res", "3", "b"}},
	0x99: {2, 8, []string{"res", "3", "c"}},
	0x9a: {2, 8, []string{"res", "3", "d"}},
	0x9b: {2, 8, []string{"res", "3", "e"}},
	0x9c: {2, 8, []string{"res", "3", "h"}},
	0x9d: {2, 8, []string{"res", "3", "l"}},
	0x9e: {2, 16, []string{"res", "3", "(hl)"}},
	0x9f: {2, 8, []string{"res", "3", "a"}},
	0xa0: {2, 8, []string{"res", "4", "b"}},
	0xa1: {2, 8, []string{"res", "4", "c"}},
	0xa2: {2, 8, []string{"res", "4", "d"}},
	0xa3: {2, 8, []string{"res", "4", "e"}},
	0xa4: {2, 8, []string{"res", "4", "h"}},
	0xa5: {2, 8, []string{"res", "4", "l"}},
	0xa6: {2, 16, []string{"res", "4", "(hl)"}},
	0xa7: {2, 8, []string{"res", "4", "a"}},
	0xa8: {2, 8, []string{"res", "5", "b"}},
	0xa9: {2, 8, []string{"res", "5", "c"}},
	0xaa: {2, 8, []string{"res", "5", "d"}},
	0xab: {2, 8, []string{"res", "5", "e"}},
	0xac: {2, 8, []string{"res", "5", "h"}},
	0xad: {2, 8, []string{"res", "5", "l"}},
	0xae: {2, 16, []string{"res", "5", "(hl)"}},
	0xaf: {2, 8, []string{"res", "5", "a"}},
	0xb0: {2, 8, []string{"res", "6", "b"}},
	0xb1: {2, 8, []string{"res", "6", "c"}},
	0xb2: {2, 8, []string{"res", "6", "d"}},
	0xb3: {2, 8, []string{"res", "6", "e"}},
	0xb4: {2, 8, []string{"res", "6", "h"}},
	0xb5: {2, 8, []string{"res", "6", "l"}},
	0xb6: {2, 16, []string{"res", "6", "(hl)"}},
	0xb7: {2, 8, []string{"res", "6", "a"}},
	0xb8: {2, 8, []string{"res", "7", "b"}},
	0xb9: {2, 8, []string{"res", "7", "c"}},
	0xba: {2, 8, []string{"res", "7", "d"}},
	0xbb: {2, 8, []string{"res", "7", "e"}},
	0xbc: {2, 8, []string{"res", "7", "h"}},
	0xbd: {2, 8, []string{"res", "7", "l"}},
	0xbe: {2, 16, []string{"res", "7", "(hl)"}},
	0xbf: {2, 8, []string{"res", "7", "a"}},
	0xc0: {2, 8, []string{"set", "0", "b"}},
	0xc1: {2, 8, []string{"set", "0", "c"}},
	0xc2: {2, 8, []string{"set", "0", "d"}},
	0xc3: {2, 8, []string{"set", "0", "e"}},
	0xc4: {2, 8, []string{"set", "0", "h"}},
	0xc5: {2, 8, []string{"set", "0", "l"}},
	0xc6: {2, 16, []string{"set", "0", "(hl)"}},
	0xc7: {2, 8, []string{"set", "0", "a"}},
	0xc8: {2, 8, []string{"set", "1", "b"}},
	0xc9: {2, 8, []string{"set", "1", "c"}},
	0xca: {2, 8, []string{"set", "1", "d"}},
	0xcb: {2, 8, []string{"set", "1", "e"}},
	0xcc: {2, 8, []string{"set", "1", "h"}},
	0xcd: {2, 8, []string{"set", "1", "l"}},
	0xce: {2, 16, []string{"set", "1", "(hl)"}},
	0xcf: {2, 8, []string{"set", "1", "a"}},
	0xd0: {2, 8, []string{"set", "2", "b"}},
	0xd1: {2, 8, []string{"set", "2", "c"}},
	0xd2: {2, 8, []string{"set", "2", "d"}},
	0xd3: {2, 8, []string{"set", "2", "e"}},
	0xd4: {2, 8, []string{"set", "2", "h"}},
	0xd5: {2, 8, []string{"set", "2", "l"}},
	0xd6: {2, 16, []string{"set", "2", "(hl)"}},
	0xd7: {2, 8, []string{"set", "2", "a"}},
	0xd8: {2, 8, []string{"set", "3", "b"}},
	0xd9: {2, 8, []string{"set", "3", "c"}},
	0xda: {2, 8, []string{"set", "3", "d"}},
	0xdb: {2, 8, []string{"set", "3", "e"}},
	0xdc: {2, 8, []string{"set", "3", "h"}},
	0xdd: {2, 8, []string{"set", "3", "l"}},
	0xde: {2, 16, []string{"set", "3", "(hl)"}},
	0xdf: {2, 8, []string{"set", "3", "a"}},
	0xe0: {2, 8, []string{"set", "4", "b"}},
	0xe1: {2, 8, []string{"set", "4", "c"}},
	0xe2: {2, 8, []string{"set", "4", "d"}},
	0xe3: {2, 8, []string{"set", "4", "e"}},
	0xe4: {2, 8, []string{"set", "4", "h"}},
	0xe5: {2, 8, []string{"set", "4", "l"}},
	0xe6: {2, 16, []string{"set", "4", "(hl)"}},
	0xe7: {2, 8, []string{"set", "4", "a"}},
	0xe8: {2, 8, []string{"set", "5", "b"}},
	0xe9: {2, 8, []string{"set", "5", "c"}},
	0xea: {2, 8, []string{"set", "5", "d"}},
	0xeb: {2, 8, []string{"set", "5", "e"}},
	0xec: {2, 8, []string{"set", "5", "h"}},
	0xed: {2, 8, []string{"set", "5", "l"}},
	0xee: {2, 16, []string{"set", "5", "(hl)"}},
	0xef: {2, 8, []string{"set", "5", "a"}},
	0xf0: {2, 8, []string{"set", "6", "b"}},
	0xf1: {2, 8, []string{"set", "6", "c"}},
	0xf2: {2, 8, []string{"set", "6", "d"}},
	0xf3: {2, 8, []string{"set", "6", "e"}},
	0xf4: {2, 8, []string{"set", "6", "h"}},
	0xf5: {2, 8, []string{"set", "6", "l"}},
	0xf6: {2, 16, []string{"set", "6", "(hl)"}},
	0xf7: {2, 8, []string{"set", "6", "a"}},
	0xf8: {2, 8, []string{"set", "7", "b"}},
	0xf9: {2, 8, []string{"set", "7", "c"}},
	0xfa: {2, 8, []string{"set", "7", "d"}},
	0xfb: {2, 8, []string{"set", "7", "e"}},
	0xfc: {2, 8, []string{"set", "7", "h"}},
	0xfd: {2, 8, []string{"set", "7", "l"}},
	0xfe: {2, 16, []string{"set", "7", "(hl)"}},
	0xff: {2, 8, []string{"set", "7", "a"}},
}
