package avr8

import (
	"fmt"
	"strconv"
)

// Operand-formatting helpers shared by every instruction's formatFunc,
// implementing the conventions of §4.4: registers as R<n>, pairs as
// R<hi>:R<lo>, index registers with +/-/+q suffixes, immediate bytes as
// #$XX, data addresses as $XXXX, and program addresses as ->$XXXX.

func regStr(n uint8) string {
	return fmt.Sprintf("R%d", n)
}

func pairStr(hi, lo uint8) string {
	return fmt.Sprintf("R%d:R%d", hi, lo)
}

func immStr(v uint8) string {
	return fmt.Sprintf("#$%02X", v)
}

func imm16Str(v uint16) string {
	return fmt.Sprintf("#$%04X", v)
}

func dataAddrStr(v uint16) string {
	return fmt.Sprintf("$%04X", v)
}

func progAddrStr(v uint32) string {
	return fmt.Sprintf("->$%04X", v)
}

// branchTargetStr formats a signed relative displacement together with its
// resolved absolute target, e.g. "+4 ->$0105".
func branchTargetStr(disp int32, target uint32) string {
	return fmt.Sprintf("%+d ->$%04X", disp, target)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
