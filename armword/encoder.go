package armword

import "fmt"

// PopR encodes "pop {rN}" for N in 0..3, the register field at bits
// 15-12 of the fixed base 0xE49D0004.
func PopR(reg int) Word {
	requireRegister(reg, 3, "PopR")
	return popBase | Word(reg)<<RdShift
}

// splitImmediate16 divides a 16-bit immediate into the imm4 (bits
// 19-16) and imm12 (bits 11-0) fields movw/movt expect: the top nibble
// in imm4, the low 12 bits in imm12.
func splitImmediate16(imm16 uint16) Word {
	imm4 := Word(imm16>>12) & Mask4Bit
	imm12 := Word(imm16) & Mask12Bit
	return imm4<<Imm4Shift | imm12
}

// MovW encodes "movw rN, #imm16", loading the low half of a constant.
func MovW(reg int, imm16 uint16) Word {
	requireRegister(reg, 4, "MovW")
	return movwBase | Word(reg)<<RdShift | splitImmediate16(imm16)
}

// MovT encodes "movt rN, #imm16", loading the high half of a constant
// into the top 16 bits of register rN.
func MovT(reg int, imm16 uint16) Word {
	requireRegister(reg, 4, "MovT")
	return movtBase | Word(reg)<<RdShift | splitImmediate16(imm16)
}

// LdrIndirect encodes "ldr rN, [rN]": load through the register into
// itself, used once SetConstant has loaded an address into it.
func LdrIndirect(reg int) Word {
	requireRegister(reg, 4, "LdrIndirect")
	return ldrBase | Word(reg)<<RdShift | Word(reg)<<RnShift
}

// SetConstant emits the two-instruction movw/movt sequence that loads
// a full 32-bit value into reg.
func SetConstant(reg int, value uint32) []Word {
	return []Word{
		MovW(reg, uint16(value)),
		MovT(reg, uint16(value>>16)),
	}
}

// LoadVariable emits SetConstant(reg, address) followed by a load
// through that register, leaving the variable's value in reg.
func LoadVariable(reg int, address uint32) []Word {
	words := SetConstant(reg, address)
	return append(words, LdrIndirect(reg))
}

// CallFunction emits the sequence for invoking a resolved function
// address with the given arity: pop the arguments off the evaluation
// stack into r0..r(arity-1) in reverse order, load the address into
// r4, branch-with-link-exchange, then push the result.
func CallFunction(address uint32, arity int) []Word {
	if arity < 0 || arity > 4 {
		panic(fmt.Sprintf("armword: CallFunction: arity %d out of range 0..4", arity))
	}

	var words []Word
	for i := arity - 1; i >= 0; i-- {
		words = append(words, PopR(i))
	}
	words = append(words, SetConstant(R4, address)...)
	words = append(words, BlxR4)
	words = append(words, PushR0)
	return words
}

func requireRegister(reg, max int, who string) {
	if reg < 0 || reg > max {
		panic(fmt.Sprintf("armword: %s: register r%d out of range 0..%d", who, reg, max))
	}
}
