package armword

import "fmt"

// Disassemble renders each word as a single mnemonic line. It only
// needs to recognize the fixed instruction subset this package emits -
// there is no general A32 decoder here, just the inverse of encoder.go.
//
// This exists so the CLI and tests have a human-readable view of
// generated code rather than only raw bytes.
func Disassemble(words []Word) []string {
	lines := make([]string, len(words))
	for i, w := range words {
		lines[i] = disassembleOne(w)
	}
	return lines
}

func disassembleOne(w Word) string {
	switch w {
	case AddR0R1:
		return "add r0, r0, r1"
	case SubR0R1:
		return "sub r0, r0, r1"
	case MulR0R1:
		return "mul r0, r0, r1"
	case PushR0:
		return "push {r0}"
	case PushR4LR:
		return "push {r4, lr}"
	case PopR4LR:
		return "pop {r4, lr}"
	case BxLR:
		return "bx lr"
	case BlxR4:
		return "blx r4"
	case Bkpt0:
		return "bkpt #0"
	}

	if reg, ok := matchPopR(w); ok {
		return fmt.Sprintf("pop {r%d}", reg)
	}
	if reg, imm, ok := matchMov(w, movwBase); ok {
		return fmt.Sprintf("movw r%d, #0x%x", reg, imm)
	}
	if reg, imm, ok := matchMov(w, movtBase); ok {
		return fmt.Sprintf("movt r%d, #0x%x", reg, imm)
	}
	if reg, ok := matchLdrIndirect(w); ok {
		return fmt.Sprintf("ldr r%d, [r%d]", reg, reg)
	}

	return fmt.Sprintf(".word 0x%08x", uint32(w))
}

func matchPopR(w Word) (int, bool) {
	reg := (w >> RdShift) & Mask4Bit
	if reg > 3 {
		return 0, false
	}
	if w&^(Mask4Bit<<RdShift) != popBase {
		return 0, false
	}
	return int(reg), true
}

func matchMov(w Word, base Word) (reg int, imm uint16, ok bool) {
	masked := w &^ (Mask4Bit << RdShift) &^ (Mask4Bit << Imm4Shift) &^ Mask12Bit
	if masked != base {
		return 0, 0, false
	}
	reg = int((w >> RdShift) & Mask4Bit)
	imm4 := (w >> Imm4Shift) & Mask4Bit
	imm12 := w & Mask12Bit
	imm = uint16(imm4<<12 | imm12)
	return reg, imm, true
}

func matchLdrIndirect(w Word) (int, bool) {
	rd := (w >> RdShift) & Mask4Bit
	rn := (w >> RnShift) & Mask4Bit
	if rd != rn {
		return 0, false
	}
	masked := w &^ (Mask4Bit << RdShift) &^ (Mask4Bit << RnShift)
	if masked != ldrBase {
		return 0, false
	}
	return int(rd), true
}
