package hw

var ops = [256]func(cpu *CPU){
	0x00: BRK,
	0x01: ORAizx,
	0x02: NOPimm,
	0x03: NOPres,
	0x04: TSBzp,
	0x05: ORAzp,
	0x06: ASLzp,
	0x07: RMB0,
	0x08: PHP,
	0x09: ORAimm,
	0x0A: ASLacc,
	0x0B: NOPres,
	0x0C: TSBabs,
	0x0D: ORAabs,
	0x0E: ASLabs,
	0x0F: BBR0,
	0x10: BPL,
	0x11: ORAizy,
	0x12: ORAzpi,
	0x13: NOPres,
	0x14: TRBzp,
	0x15: ORAzpx,
	0x16: ASLzpx,
	0x17: RMB1,
	0x18: CLC,
	0x19: ORAaby,
	0x1A: INCacc,
	0x1B: NOPres,
	0x1C: TRBabs,
	0x1D: ORAabx,
	0x1E: ASLabx,
	0x1F: BBR1,
	0x20: JSR,
	0x21: ANDizx,
	0x22: NOPimm,
	0x23: NOPres,
	0x24: BITzp,
	0x25: ANDzp,
	0x26: ROLzp,
	0x27: RMB2,
	0x28: PLP,
	0x29: ANDimm,
	0x2A: ROLacc,
	0x2B: NOPres,
	0x2C: BITabs,
	0x2D: ANDabs,
	0x2E: ROLabs,
	0x2F: BBR2,
	0x30: BMI,
	0x31: ANDizy,
	0x32: ANDzpi,
	0x33: NOPres,
	0x34: BITzpx,
	0x35: ANDzpx,
	0x36: ROLzpx,
	0x37: RMB3,
	0x38: SEC,
	0x39: ANDaby,
	0x3A: DECacc,
	0x3B: NOPres,
	0x3C: BITabx,
	0x3D: ANDabx,
	0x3E: ROLabx,
	0x3F: BBR3,
	0x40: RTI,
	0x41: EORizx,
	0x42: NOPimm,
	0x43: NOPres,
	0x44: NOPzp,
	0x45: EORzp,
	0x46: LSRzp,
	0x47: RMB4,
	0x48: PHA,
	0x49: EORimm,
	0x4A: LSRacc,
	0x4B: NOPres,
	0x4C: JMPabs,
	0x4D: EORabs,
	0x4E: LSRabs,
	0x4F: BBR4,
	0x50: BVC,
	0x51: EORizy,
	0x52: EORzpi,
	0x53: NOPres,
	0x54: NOPzpx,
	0x55: EORzpx,
	0x56: LSRzpx,
	0x57: RMB5,
	0x58: CLI,
	0x59: EORaby,
	0x5A: PHY,
	0x5B: NOPres,
	0x5C: NOPabs8,
	0x5D: EORabx,
	0x5E: LSRabx,
	0x5F: BBR5,
	0x60: RTS,
	0x61: ADCizx,
	0x62: NOPimm,
	0x63: NOPres,
	0x64: STZzp,
	0x65: ADCzp,
	0x66: RORzp,
	0x67: RMB6,
	0x68: PLA,
	0x69: ADCimm,
	0x6A: RORacc,
	0x6B: NOPres,
	0x6C: JMPind,
	0x6D: ADCabs,
	0x6E: RORabs,
	0x6F: BBR6,
	0x70: BVS,
	0x71: ADCizy,
	0x72: ADCzpi,
	0x73: NOPres,
	0x74: STZzpx,
	0x75: ADCzpx,
	0x76: RORzpx,
	0x77: RMB7,
	0x78: SEI,
	0x79: ADCaby,
	0x7A: PLY,
	0x7B: NOPres,
	0x7C: JMPiax,
	0x7D: ADCabx,
	0x7E: RORabx,
	0x7F: BBR7,
	0x80: BRA,
	0x81: STAizx,
	0x82: NOPimm,
	0x83: NOPres,
	0x84: STYzp,
	0x85: STAzp,
	0x86: STXzp,
	0x87: SMB0,
	0x88: DEY,
	0x89: BITimm,
	0x8A: TXA,
	0x8B: NOPres,
	0x8C: STYabs,
	0x8D: STAabs,
	0x8E: STXabs,
	0x8F: BBS0,
	0x90: BCC,
	0x91: STAizy,
	0x92: STAzpi,
	0x93: NOPres,
	0x94: STYzpx,
	0x95: STAzpx,
	0x96: STXzpy,
	0x97: SMB1,
	0x98: TYA,
	0x99: STAaby,
	0x9A: TXS,
	0x9B: NOPres,
	0x9C: STZabs,
	0x9D: STAabx,
	0x9E: STZabx,
	0x9F: BBS1,
	0xA0: LDYimm,
	0xA1: LDAizx,
	0xA2: LDXimm,
	0xA3: NOPres,
	0xA4: LDYzp,
	0xA5: LDAzp,
	0xA6: LDXzp,
	0xA7: SMB2,
	0xA8: TAY,
	0xA9: LDAimm,
	0xAA: TAX,
	0xAB: NOPres,
	0xAC: LDYabs,
	0xAD: LDAabs,
	0xAE: LDXabs,
	0xAF: BBS2,
	0xB0: BCS,
	0xB1: LDAizy,
	0xB2: LDAzpi,
	0xB3: NOPres,
	0xB4: LDYzpx,
	0xB5: LDAzpx,
	0xB6: LDXzpy,
	0xB7: SMB3,
	0xB8: CLV,
	0xB9: LDAaby,
	0xBA: TSX,
	0xBB: NOPres,
	0xBC: LDYabx,
	0xBD: LDAabx,
	0xBE: LDXaby,
	0xBF: BBS3,
	0xC0: CPYimm,
	0xC1: CMPizx,
	0xC2: NOPimm,
	0xC3: NOPres,
	0xC4: CPYzp,
	0xC5: CMPzp,
	0xC6: DECzp,
	0xC7: SMB4,
	0xC8: INY,
	0xC9: CMPimm,
	0xCA: DEX,
	0xCB: WAI,
	0xCC: CPYabs,
	0xCD: CMPabs,
	0xCE: DECabs,
	0xCF: BBS4,
	0xD0: BNE,
	0xD1: CMPizy,
	0xD2: CMPzpi,
	0xD3: NOPres,
	0xD4: NOPzpx,
	0xD5: CMPzpx,
	0xD6: DECzpx,
	0xD7: SMB5,
	0xD8: CLD,
	0xD9: CMPaby,
	0xDA: PHX,
	0xDB: STP,
	0xDC: NOPabs,
	0xDD: CMPabx,
	0xDE: DECabx,
	0xDF: BBS5,
	0xE0: CPXimm,
	0xE1: SBCizx,
	0xE2: NOPimm,
	0xE3: NOPres,
	0xE4: CPXzp,
	0xE5: SBCzp,
	0xE6: INCzp,
	0xE7: SMB6,
	0xE8: INX,
	0xE9: SBCimm,
	0xEA: NOPimp,
	0xEB: NOPres,
	0xEC: CPXabs,
	0xED: SBCabs,
	0xEE: INCabs,
	0xEF: BBS6,
	0xF0: BEQ,
	0xF1: SBCizy,
	0xF2: SBCzpi,
	0xF3: NOPres,
	0xF4: NOPzpx,
	0xF5: SBCzpx,
	0xF6: INCzpx,
	0xF7: SMB7,
	0xF8: SED,
	0xF9: SBCaby,
	0xFA: PLX,
	0xFB: NOPres,
	0xFC: NOPabs,
	0xFD: SBCabx,
	0xFE: INCabx,
	0xFF: BBS7,
}

// 00
func BRK(cpu *CPU) {
	cpu.tick()
	cpu.push16(cpu.PC + 1)
	p := cpu.P
	p.setBit(pbitB)
	p.setBit(pbitU)
	cpu.push8(uint8(p))
	cpu.P.setBit(pbitI)
	cpu.P.clearBit(pbitD)
	cpu.PC = cpu.Read16(IRQVector)
}

// 01
func ORAizx(cpu *CPU) {
	ora(cpu, cpu.Read8(cpu.izx()))
}

// 04
func TSBzp(cpu *CPU) {
	tsb(cpu, cpu.zp())
}

// 05
func ORAzp(cpu *CPU) {
	ora(cpu, cpu.Read8(cpu.zp()))
}

// 06
func ASLzp(cpu *CPU) {
	oper := cpu.zp()
	val := cpu.Read8(oper)
	asl(cpu, &val)
	cpu.Write8(oper, val)
}

// 08
func PHP(cpu *CPU) {
	cpu.tick()
	p := cpu.P
	p |= (1 << pbitB) | (1 << pbitU)
	cpu.push8(uint8(p))
}

// 09
func ORAimm(cpu *CPU) {
	ora(cpu, cpu.imm())
}

// 0A
func ASLacc(cpu *CPU) {
	asl(cpu, &cpu.A)
}

// 0C
func TSBabs(cpu *CPU) {
	tsb(cpu, cpu.abs())
}

// 0D
func ORAabs(cpu *CPU) {
	ora(cpu, cpu.Read8(cpu.abs()))
}

// 0E
func ASLabs(cpu *CPU) {
	oper := cpu.abs()
	val := cpu.Read8(oper)
	asl(cpu, &val)
	cpu.Write8(oper, val)
}

// 10
func BPL(cpu *CPU) {
	cpu.branch(!cpu.P.N())
}

// 11
func ORAizy(cpu *CPU) {
	ora(cpu, cpu.Read8(cpu.izy()))
}

// 12
func ORAzpi(cpu *CPU) {
	ora(cpu, cpu.Read8(cpu.zpi()))
}

// 14
func TRBzp(cpu *CPU) {
	trb(cpu, cpu.zp())
}

// 15
func ORAzpx(cpu *CPU) {
	ora(cpu, cpu.Read8(cpu.zpx()))
}

// 16
func ASLzpx(cpu *CPU) {
	oper := cpu.zpx()
	val := cpu.Read8(oper)
	asl(cpu, &val)
	cpu.Write8(oper, val)
}

// 18
func CLC(cpu *CPU) {
	cpu.P.clearBit(pbitC)
	cpu.tick()
}

// 19
func ORAaby(cpu *CPU) {
	ora(cpu, cpu.Read8(cpu.aby()))
}

// 1A
func INCacc(cpu *CPU) {
	cpu.tick()
	cpu.A++
	cpu.P.checkNZ(cpu.A)
}

// 1C
func TRBabs(cpu *CPU) {
	trb(cpu, cpu.abs())
}

// 1D
func ORAabx(cpu *CPU) {
	ora(cpu, cpu.Read8(cpu.abx()))
}

// 1E
func ASLabx(cpu *CPU) {
	oper := cpu.abx()
	val := cpu.Read8(oper)
	asl(cpu, &val)
	cpu.Write8(oper, val)
}

// 20
func JSR(cpu *CPU) {
	oper := cpu.abs()
	cpu.tick()
	// Push the address of the last byte of the JSR; RTS adds one back.
	cpu.push16(cpu.PC - 1)
	cpu.PC = oper
}

// 21
func ANDizx(cpu *CPU) {
	and(cpu, cpu.Read8(cpu.izx()))
}

// 24
func BITzp(cpu *CPU) {
	bit(cpu, cpu.Read8(cpu.zp()))
}

// 25
func ANDzp(cpu *CPU) {
	and(cpu, cpu.Read8(cpu.zp()))
}

// 26
func ROLzp(cpu *CPU) {
	oper := cpu.zp()
	val := cpu.Read8(oper)
	rol(cpu, &val)
	cpu.Write8(oper, val)
}

// 28
func PLP(cpu *CPU) {
	cpu.tick()
	cpu.tick()
	p := cpu.pull8()
	const mask = 0b11001111 // ignore B and U bits
	cpu.P = P(copybits(uint8(cpu.P), p, mask))
}

// 29
func ANDimm(cpu *CPU) {
	and(cpu, cpu.imm())
}

// 2A
func ROLacc(cpu *CPU) {
	rol(cpu, &cpu.A)
}

// 2C
func BITabs(cpu *CPU) {
	bit(cpu, cpu.Read8(cpu.abs()))
}

// 2D
func ANDabs(cpu *CPU) {
	and(cpu, cpu.Read8(cpu.abs()))
}

// 2E
func ROLabs(cpu *CPU) {
	oper := cpu.abs()
	val := cpu.Read8(oper)
	rol(cpu, &val)
	cpu.Write8(oper, val)
}

// 30
func BMI(cpu *CPU) {
	cpu.branch(cpu.P.N())
}

// 31
func ANDizy(cpu *CPU) {
	and(cpu, cpu.Read8(cpu.izy()))
}

// 32
func ANDzpi(cpu *CPU) {
	and(cpu, cpu.Read8(cpu.zpi()))
}

// 34
func BITzpx(cpu *CPU) {
	bit(cpu, cpu.Read8(cpu.zpx()))
}

// 35
func ANDzpx(cpu *CPU) {
	and(cpu, cpu.Read8(cpu.zpx()))
}

// 36
func ROLzpx(cpu *CPU) {
	oper := cpu.zpx()
	val := cpu.Read8(oper)
	rol(cpu, &val)
	cpu.Write8(oper, val)
}

// 38
func SEC(cpu *CPU) {
	cpu.P.setBit(pbitC)
	cpu.tick()
}

// 39
func ANDaby(cpu *CPU) {
	and(cpu, cpu.Read8(cpu.aby()))
}

// 3A
func DECacc(cpu *CPU) {
	cpu.tick()
	cpu.A--
	cpu.P.checkNZ(cpu.A)
}

// 3C
func BITabx(cpu *CPU) {
	bit(cpu, cpu.Read8(cpu.abx()))
}

// 3D
func ANDabx(cpu *CPU) {
	and(cpu, cpu.Read8(cpu.abx()))
}

// 3E
func ROLabx(cpu *CPU) {
	oper := cpu.abx()
	val := cpu.Read8(oper)
	rol(cpu, &val)
	cpu.Write8(oper, val)
}

// 40
func RTI(cpu *CPU) {
	cpu.tick()
	cpu.tick()
	p := cpu.pull8()
	const mask = 0b11001111 // ignore B and U bits
	cpu.P = P(copybits(uint8(cpu.P), p, mask))
	cpu.PC = cpu.pull16()
}

// 41
func EORizx(cpu *CPU) {
	eor(cpu, cpu.Read8(cpu.izx()))
}

// 44
func NOPzp(cpu *CPU) {
	_ = cpu.Read8(cpu.zp())
}

// 45
func EORzp(cpu *CPU) {
	eor(cpu, cpu.Read8(cpu.zp()))
}

// 46
func LSRzp(cpu *CPU) {
	oper := cpu.zp()
	val := cpu.Read8(oper)
	lsr(cpu, &val)
	cpu.Write8(oper, val)
}

// 48
func PHA(cpu *CPU) {
	cpu.tick()
	cpu.push8(cpu.A)
}

// 49
func EORimm(cpu *CPU) {
	eor(cpu, cpu.imm())
}

// 4A
func LSRacc(cpu *CPU) {
	lsr(cpu, &cpu.A)
}

// 4C
func JMPabs(cpu *CPU) {
	cpu.PC = cpu.abs()
}

// 4D
func EORabs(cpu *CPU) {
	eor(cpu, cpu.Read8(cpu.abs()))
}

// 4E
func LSRabs(cpu *CPU) {
	oper := cpu.abs()
	val := cpu.Read8(oper)
	lsr(cpu, &val)
	cpu.Write8(oper, val)
}

// 50
func BVC(cpu *CPU) {
	cpu.branch(!cpu.P.V())
}

// 51
func EORizy(cpu *CPU) {
	eor(cpu, cpu.Read8(cpu.izy()))
}

// 52
func EORzpi(cpu *CPU) {
	eor(cpu, cpu.Read8(cpu.zpi()))
}

// 55
func EORzpx(cpu *CPU) {
	eor(cpu, cpu.Read8(cpu.zpx()))
}

// 56
func LSRzpx(cpu *CPU) {
	oper := cpu.zpx()
	val := cpu.Read8(oper)
	lsr(cpu, &val)
	cpu.Write8(oper, val)
}

// 58
func CLI(cpu *CPU) {
	cpu.P.clearBit(pbitI)
	cpu.tick()
}

// 59
func EORaby(cpu *CPU) {
	eor(cpu, cpu.Read8(cpu.aby()))
}

// 5A
func PHY(cpu *CPU) {
	cpu.tick()
	cpu.push8(cpu.Y)
}

// 5D
func EORabx(cpu *CPU) {
	eor(cpu, cpu.Read8(cpu.abx()))
}

// 5E
func LSRabx(cpu *CPU) {
	oper := cpu.abx()
	val := cpu.Read8(oper)
	lsr(cpu, &val)
	cpu.Write8(oper, val)
}

// 60
func RTS(cpu *CPU) {
	cpu.tick()
	cpu.tick()
	cpu.PC = cpu.pull16()
	cpu.PC++
	cpu.tick()
}

// 61
func ADCizx(cpu *CPU) {
	adc(cpu, cpu.Read8(cpu.izx()))
}

// 64
func STZzp(cpu *CPU) {
	cpu.Write8(cpu.zp(), 0x00)
}

// 65
func ADCzp(cpu *CPU) {
	adc(cpu, cpu.Read8(cpu.zp()))
}

// 66
func RORzp(cpu *CPU) {
	oper := cpu.zp()
	val := cpu.Read8(oper)
	ror(cpu, &val)
	cpu.Write8(oper, val)
}

// 68
func PLA(cpu *CPU) {
	cpu.tick()
	cpu.tick()
	cpu.A = cpu.pull8()
	cpu.P.checkNZ(cpu.A)
}

// 69
func ADCimm(cpu *CPU) {
	adc(cpu, cpu.imm())
}

// 6A
func RORacc(cpu *CPU) {
	ror(cpu, &cpu.A)
}

// 6C
func JMPind(cpu *CPU) {
	cpu.PC = cpu.ind()
}

// 6D
func ADCabs(cpu *CPU) {
	adc(cpu, cpu.Read8(cpu.abs()))
}

// 6E
func RORabs(cpu *CPU) {
	oper := cpu.abs()
	val := cpu.Read8(oper)
	ror(cpu, &val)
	cpu.Write8(oper, val)
}

// 70
func BVS(cpu *CPU) {
	cpu.branch(cpu.P.V())
}

// 71
func ADCizy(cpu *CPU) {
	adc(cpu, cpu.Read8(cpu.izy()))
}

// 72
func ADCzpi(cpu *CPU) {
	adc(cpu, cpu.Read8(cpu.zpi()))
}

// 74
func STZzpx(cpu *CPU) {
	cpu.Write8(cpu.zpx(), 0x00)
}

// 75
func ADCzpx(cpu *CPU) {
	adc(cpu, cpu.Read8(cpu.zpx()))
}

// 76
func RORzpx(cpu *CPU) {
	oper := cpu.zpx()
	val := cpu.Read8(oper)
	ror(cpu, &val)
	cpu.Write8(oper, val)
}

// 78
func SEI(cpu *CPU) {
	cpu.P.setBit(pbitI)
	cpu.tick()
}

// 79
func ADCaby(cpu *CPU) {
	adc(cpu, cpu.Read8(cpu.aby()))
}

// 7A
func PLY(cpu *CPU) {
	cpu.tick()
	cpu.tick()
	cpu.Y = cpu.pull8()
	cpu.P.checkNZ(cpu.Y)
}

// 7C
func JMPiax(cpu *CPU) {
	cpu.PC = cpu.iax()
}

// 7D
func ADCabx(cpu *CPU) {
	adc(cpu, cpu.Read8(cpu.abx()))
}

// 7E
func RORabx(cpu *CPU) {
	oper := cpu.abx()
	val := cpu.Read8(oper)
	ror(cpu, &val)
	cpu.Write8(oper, val)
}

// 80
func BRA(cpu *CPU) {
	cpu.branch(true)
}

// 81
func STAizx(cpu *CPU) {
	cpu.Write8(cpu.izx(), cpu.A)
}

// 84
func STYzp(cpu *CPU) {
	cpu.Write8(cpu.zp(), cpu.Y)
}

// 85
func STAzp(cpu *CPU) {
	cpu.Write8(cpu.zp(), cpu.A)
}

// 86
func STXzp(cpu *CPU) {
	cpu.Write8(cpu.zp(), cpu.X)
}

// 88
func DEY(cpu *CPU) {
	cpu.tick()
	cpu.Y--
	cpu.P.checkNZ(cpu.Y)
}

// 89
func BITimm(cpu *CPU) {
	// Immediate BIT only affects Z.
	cpu.P.checkZ(cpu.A & cpu.imm())
}

// 8A
func TXA(cpu *CPU) {
	cpu.A = cpu.X
	cpu.P.checkNZ(cpu.A)
	cpu.tick()
}

// 8C
func STYabs(cpu *CPU) {
	cpu.Write8(cpu.abs(), cpu.Y)
}

// 8D
func STAabs(cpu *CPU) {
	cpu.Write8(cpu.abs(), cpu.A)
}

// 8E
func STXabs(cpu *CPU) {
	cpu.Write8(cpu.abs(), cpu.X)
}

// 90
func BCC(cpu *CPU) {
	cpu.branch(!cpu.P.C())
}

// 91
func STAizy(cpu *CPU) {
	cpu.Write8(cpu.izyW(), cpu.A)
}

// 92
func STAzpi(cpu *CPU) {
	cpu.Write8(cpu.zpi(), cpu.A)
}

// 94
func STYzpx(cpu *CPU) {
	cpu.Write8(cpu.zpx(), cpu.Y)
}

// 95
func STAzpx(cpu *CPU) {
	cpu.Write8(cpu.zpx(), cpu.A)
}

// 96
func STXzpy(cpu *CPU) {
	cpu.Write8(cpu.zpy(), cpu.X)
}

// 98
func TYA(cpu *CPU) {
	cpu.A = cpu.Y
	cpu.P.checkNZ(cpu.A)
	cpu.tick()
}

// 99
func STAaby(cpu *CPU) {
	cpu.Write8(cpu.abyW(), cpu.A)
}

// 9A
func TXS(cpu *CPU) {
	cpu.SP = cpu.X
	cpu.tick()
}

// 9C
func STZabs(cpu *CPU) {
	cpu.Write8(cpu.abs(), 0x00)
}

// 9D
func STAabx(cpu *CPU) {
	cpu.Write8(cpu.abxW(), cpu.A)
}

// 9E
func STZabx(cpu *CPU) {
	cpu.Write8(cpu.abxW(), 0x00)
}

// A0
func LDYimm(cpu *CPU) {
	ldy(cpu, cpu.imm())
}

// A1
func LDAizx(cpu *CPU) {
	lda(cpu, cpu.Read8(cpu.izx()))
}

// A2
func LDXimm(cpu *CPU) {
	ldx(cpu, cpu.imm())
}

// A4
func LDYzp(cpu *CPU) {
	ldy(cpu, cpu.Read8(cpu.zp()))
}

// A5
func LDAzp(cpu *CPU) {
	lda(cpu, cpu.Read8(cpu.zp()))
}

// A6
func LDXzp(cpu *CPU) {
	ldx(cpu, cpu.Read8(cpu.zp()))
}

// A8
func TAY(cpu *CPU) {
	cpu.Y = cpu.A
	cpu.P.checkNZ(cpu.Y)
	cpu.tick()
}

// A9
func LDAimm(cpu *CPU) {
	lda(cpu, cpu.imm())
}

// AA
func TAX(cpu *CPU) {
	cpu.X = cpu.A
	cpu.P.checkNZ(cpu.X)
	cpu.tick()
}

// AC
func LDYabs(cpu *CPU) {
	ldy(cpu, cpu.Read8(cpu.abs()))
}

// AD
func LDAabs(cpu *CPU) {
	lda(cpu, cpu.Read8(cpu.abs()))
}

// AE
func LDXabs(cpu *CPU) {
	ldx(cpu, cpu.Read8(cpu.abs()))
}

// B0
func BCS(cpu *CPU) {
	cpu.branch(cpu.P.C())
}

// B1
func LDAizy(cpu *CPU) {
	lda(cpu, cpu.Read8(cpu.izy()))
}

// B2
func LDAzpi(cpu *CPU) {
	lda(cpu, cpu.Read8(cpu.zpi()))
}

// B4
func LDYzpx(cpu *CPU) {
	ldy(cpu, cpu.Read8(cpu.zpx()))
}

// B5
func LDAzpx(cpu *CPU) {
	lda(cpu, cpu.Read8(cpu.zpx()))
}

// B6
func LDXzpy(cpu *CPU) {
	ldx(cpu, cpu.Read8(cpu.zpy()))
}

// B8
func CLV(cpu *CPU) {
	cpu.P.clearBit(pbitV)
	cpu.tick()
}

// B9
func LDAaby(cpu *CPU) {
	lda(cpu, cpu.Read8(cpu.aby()))
}

// BA
func TSX(cpu *CPU) {
	cpu.X = cpu.SP
	cpu.P.checkNZ(cpu.X)
	cpu.tick()
}

// BC
func LDYabx(cpu *CPU) {
	ldy(cpu, cpu.Read8(cpu.abx()))
}

// BD
func LDAabx(cpu *CPU) {
	lda(cpu, cpu.Read8(cpu.abx()))
}

// BE
func LDXaby(cpu *CPU) {
	ldx(cpu, cpu.Read8(cpu.aby()))
}

// C0
func CPYimm(cpu *CPU) {
	compare(cpu, cpu.Y, cpu.imm())
}

// C1
func CMPizx(cpu *CPU) {
	compare(cpu, cpu.A, cpu.Read8(cpu.izx()))
}

// C4
func CPYzp(cpu *CPU) {
	compare(cpu, cpu.Y, cpu.Read8(cpu.zp()))
}

// C5
func CMPzp(cpu *CPU) {
	compare(cpu, cpu.A, cpu.Read8(cpu.zp()))
}

// C6
func DECzp(cpu *CPU) {
	oper := cpu.zp()
	val := cpu.Read8(oper)
	dec(cpu, &val)
	cpu.Write8(oper, val)
}

// C8
func INY(cpu *CPU) {
	cpu.tick()
	cpu.Y++
	cpu.P.checkNZ(cpu.Y)
}

// C9
func CMPimm(cpu *CPU) {
	compare(cpu, cpu.A, cpu.imm())
}

// CA
func DEX(cpu *CPU) {
	cpu.tick()
	cpu.X--
	cpu.P.checkNZ(cpu.X)
}

// CB
func WAI(cpu *CPU) {
	panic(&Fault{Kind: FaultUnimplemented, Opcode: 0xCB})
}

// CC
func CPYabs(cpu *CPU) {
	compare(cpu, cpu.Y, cpu.Read8(cpu.abs()))
}

// CD
func CMPabs(cpu *CPU) {
	compare(cpu, cpu.A, cpu.Read8(cpu.abs()))
}

// CE
func DECabs(cpu *CPU) {
	oper := cpu.abs()
	val := cpu.Read8(oper)
	dec(cpu, &val)
	cpu.Write8(oper, val)
}

// D0
func BNE(cpu *CPU) {
	cpu.branch(!cpu.P.Z())
}

// D1
func CMPizy(cpu *CPU) {
	compare(cpu, cpu.A, cpu.Read8(cpu.izy()))
}

// D2
func CMPzpi(cpu *CPU) {
	compare(cpu, cpu.A, cpu.Read8(cpu.zpi()))
}

// D5
func CMPzpx(cpu *CPU) {
	compare(cpu, cpu.A, cpu.Read8(cpu.zpx()))
}

// D6
func DECzpx(cpu *CPU) {
	oper := cpu.zpx()
	val := cpu.Read8(oper)
	dec(cpu, &val)
	cpu.Write8(oper, val)
}

// D8
func CLD(cpu *CPU) {
	cpu.P.clearBit(pbitD)
	cpu.tick()
}

// D9
func CMPaby(cpu *CPU) {
	compare(cpu, cpu.A, cpu.Read8(cpu.aby()))
}

// DA
func PHX(cpu *CPU) {
	cpu.tick()
	cpu.push8(cpu.X)
}

// DB
func STP(cpu *CPU) {
	panic(&Fault{Kind: FaultUnimplemented, Opcode: 0xDB})
}

// DD
func CMPabx(cpu *CPU) {
	compare(cpu, cpu.A, cpu.Read8(cpu.abx()))
}

// DE
func DECabx(cpu *CPU) {
	oper := cpu.abxW()
	val := cpu.Read8(oper)
	dec(cpu, &val)
	cpu.Write8(oper, val)
}

// E0
func CPXimm(cpu *CPU) {
	compare(cpu, cpu.X, cpu.imm())
}

// E1
func SBCizx(cpu *CPU) {
	sbc(cpu, cpu.Read8(cpu.izx()))
}

// E4
func CPXzp(cpu *CPU) {
	compare(cpu, cpu.X, cpu.Read8(cpu.zp()))
}

// E5
func SBCzp(cpu *CPU) {
	sbc(cpu, cpu.Read8(cpu.zp()))
}

// E6
func INCzp(cpu *CPU) {
	oper := cpu.zp()
	val := cpu.Read8(oper)
	inc(cpu, &val)
	cpu.Write8(oper, val)
}

// E8
func INX(cpu *CPU) {
	cpu.tick()
	cpu.X++
	cpu.P.checkNZ(cpu.X)
}

// E9
func SBCimm(cpu *CPU) {
	sbc(cpu, cpu.imm())
}

// EA
func NOPimp(cpu *CPU) {
	cpu.tick()
}

// EC
func CPXabs(cpu *CPU) {
	compare(cpu, cpu.X, cpu.Read8(cpu.abs()))
}

// ED
func SBCabs(cpu *CPU) {
	sbc(cpu, cpu.Read8(cpu.abs()))
}

// EE
func INCabs(cpu *CPU) {
	oper := cpu.abs()
	val := cpu.Read8(oper)
	inc(cpu, &val)
	cpu.Write8(oper, val)
}

// F0
func BEQ(cpu *CPU) {
	cpu.branch(cpu.P.Z())
}

// F1
func SBCizy(cpu *CPU) {
	sbc(cpu, cpu.Read8(cpu.izy()))
}

// F2
func SBCzpi(cpu *CPU) {
	sbc(cpu, cpu.Read8(cpu.zpi()))
}

// F5
func SBCzpx(cpu *CPU) {
	sbc(cpu, cpu.Read8(cpu.zpx()))
}

// F6
func INCzpx(cpu *CPU) {
	oper := cpu.zpx()
	val := cpu.Read8(oper)
	inc(cpu, &val)
	cpu.Write8(oper, val)
}

// F8
func SED(cpu *CPU) {
	cpu.P.setBit(pbitD)
	cpu.tick()
}

// F9
func SBCaby(cpu *CPU) {
	sbc(cpu, cpu.Read8(cpu.aby()))
}

// FA
func PLX(cpu *CPU) {
	cpu.tick()
	cpu.tick()
	cpu.X = cpu.pull8()
	cpu.P.checkNZ(cpu.X)
}

// FD
func SBCabx(cpu *CPU) {
	sbc(cpu, cpu.Read8(cpu.abx()))
}

// FE
func INCabx(cpu *CPU) {
	oper := cpu.abxW()
	val := cpu.Read8(oper)
	inc(cpu, &val)
	cpu.Write8(oper, val)
}

/* single-bit zero-page operations (Rockwell/WDC extensions) */

func RMB0(cpu *CPU) { rmb(cpu, 0) }
func RMB1(cpu *CPU) { rmb(cpu, 1) }
func RMB2(cpu *CPU) { rmb(cpu, 2) }
func RMB3(cpu *CPU) { rmb(cpu, 3) }
func RMB4(cpu *CPU) { rmb(cpu, 4) }
func RMB5(cpu *CPU) { rmb(cpu, 5) }
func RMB6(cpu *CPU) { rmb(cpu, 6) }
func RMB7(cpu *CPU) { rmb(cpu, 7) }

func SMB0(cpu *CPU) { smb(cpu, 0) }
func SMB1(cpu *CPU) { smb(cpu, 1) }
func SMB2(cpu *CPU) { smb(cpu, 2) }
func SMB3(cpu *CPU) { smb(cpu, 3) }
func SMB4(cpu *CPU) { smb(cpu, 4) }
func SMB5(cpu *CPU) { smb(cpu, 5) }
func SMB6(cpu *CPU) { smb(cpu, 6) }
func SMB7(cpu *CPU) { smb(cpu, 7) }

func BBR0(cpu *CPU) { bbr(cpu, 0) }
func BBR1(cpu *CPU) { bbr(cpu, 1) }
func BBR2(cpu *CPU) { bbr(cpu, 2) }
func BBR3(cpu *CPU) { bbr(cpu, 3) }
func BBR4(cpu *CPU) { bbr(cpu, 4) }
func BBR5(cpu *CPU) { bbr(cpu, 5) }
func BBR6(cpu *CPU) { bbr(cpu, 6) }
func BBR7(cpu *CPU) { bbr(cpu, 7) }

func BBS0(cpu *CPU) { bbs(cpu, 0) }
func BBS1(cpu *CPU) { bbs(cpu, 1) }
func BBS2(cpu *CPU) { bbs(cpu, 2) }
func BBS3(cpu *CPU) { bbs(cpu, 3) }
func BBS4(cpu *CPU) { bbs(cpu, 4) }
func BBS5(cpu *CPU) { bbs(cpu, 5) }
func BBS6(cpu *CPU) { bbs(cpu, 6) }
func BBS7(cpu *CPU) { bbs(cpu, 7) }

// reset memory bit.
func rmb(cpu *CPU, bit int) {
	oper := cpu.zp()
	val := cpu.Read8(oper)
	cpu.tick()
	cpu.Write8(oper, val&^(1<<bit))
}

// set memory bit.
func smb(cpu *CPU, bit int) {
	oper := cpu.zp()
	val := cpu.Read8(oper)
	cpu.tick()
	cpu.Write8(oper, val|1<<bit)
}

// branch on memory bit reset.
func bbr(cpu *CPU, bit int) {
	oper := cpu.zp()
	val := cpu.Read8(oper)
	cpu.tick()
	cpu.branch(val&(1<<bit) == 0)
}

// branch on memory bit set.
func bbs(cpu *CPU, bit int) {
	oper := cpu.zp()
	val := cpu.Read8(oper)
	cpu.tick()
	cpu.branch(val&(1<<bit) != 0)
}

/* NOP variants */

// 1-byte, 1-cycle reserved slot.
func NOPres(cpu *CPU) {}

// 2-byte, 2-cycle reserved slot.
func NOPimm(cpu *CPU) {
	_ = cpu.imm()
}

// 2-byte, 4-cycle reserved slot.
func NOPzpx(cpu *CPU) {
	_ = cpu.Read8(cpu.zpx())
}

// 3-byte, 4-cycle reserved slot.
func NOPabs(cpu *CPU) {
	_ = cpu.abs()
	cpu.tick()
}

// 5C, the oddball: 3 bytes, 8 cycles.
func NOPabs8(cpu *CPU) {
	_ = cpu.abs()
	for i := 0; i < 5; i++ {
		cpu.tick()
	}
}

/* common instruction implementation */

// add memory to accumulator with carry.
func adc(cpu *CPU, val uint8) {
	if cpu.P.D() {
		adcDecimal(cpu, val)
		return
	}
	carry := cpu.P.ibit(pbitC)
	sum := uint16(cpu.A) + uint16(val) + uint16(carry)

	cpu.P.checkCV(cpu.A, val, sum)
	cpu.A = uint8(sum)
	cpu.P.checkNZ(cpu.A)
}

// packed-BCD addition. On the CMOS part the correction pass costs one
// extra cycle and N/Z reflect the decimal result.
func adcDecimal(cpu *CPU, val uint8) {
	cpu.tick()

	acc := uint32(cpu.A)
	add := uint32(val)
	carry := uint32(cpu.P.ibit(pbitC))
	overflow := (acc^add)&0x80 == 0

	lo := (acc & 0x0f) + (add & 0x0f) + carry
	var carrylo uint32
	if lo >= 0x0a {
		carrylo = 0x10
		lo -= 0x0a
	}

	hi := (acc & 0xf0) + (add & 0xf0) + carrylo
	if hi >= 0xa0 {
		cpu.P.setBit(pbitC)
		if hi >= 0x180 {
			overflow = false
		}
		hi -= 0xa0
	} else {
		cpu.P.clearBit(pbitC)
		if hi < 0x80 {
			overflow = false
		}
	}

	cpu.P.writeBit(pbitV, overflow)
	cpu.A = uint8(hi | lo)
	cpu.P.checkNZ(cpu.A)
}

// subtract memory from accumulator with borrow.
func sbc(cpu *CPU, val uint8) {
	if cpu.P.D() {
		sbcDecimal(cpu, val)
		return
	}
	val ^= 0xff
	carry := cpu.P.ibit(pbitC)
	sum := uint16(cpu.A) + uint16(val) + uint16(carry)

	cpu.P.checkCV(cpu.A, val, sum)
	cpu.A = uint8(sum)
	cpu.P.checkNZ(cpu.A)
}

// packed-BCD subtraction, same CMOS cycle and flag behavior as adcDecimal.
func sbcDecimal(cpu *CPU, val uint8) {
	cpu.tick()

	acc := uint32(cpu.A)
	sub := uint32(val)
	carry := uint32(cpu.P.ibit(pbitC))
	overflow := (acc^sub)&0x80 != 0

	lo := 0x0f + (acc & 0x0f) - (sub & 0x0f) + carry
	var carrylo uint32
	if lo < 0x10 {
		lo -= 0x06
	} else {
		lo -= 0x10
		carrylo = 0x10
	}

	hi := 0xf0 + (acc & 0xf0) - (sub & 0xf0) + carrylo
	if hi < 0x100 {
		cpu.P.clearBit(pbitC)
		if hi < 0x80 {
			overflow = false
		}
		hi -= 0x60
	} else {
		cpu.P.setBit(pbitC)
		if hi >= 0x180 {
			overflow = false
		}
		hi -= 0x100
	}

	cpu.P.writeBit(pbitV, overflow)
	cpu.A = uint8(hi | lo)
	cpu.P.checkNZ(cpu.A)
}

// and memory with accumulator.
func and(cpu *CPU, val uint8) {
	cpu.A &= val
	cpu.P.checkNZ(cpu.A)
}

// or memory with accumulator.
func ora(cpu *CPU, val uint8) {
	cpu.A |= val
	cpu.P.checkNZ(cpu.A)
}

// exclusive-or memory with accumulator.
func eor(cpu *CPU, val uint8) {
	cpu.A ^= val
	cpu.P.checkNZ(cpu.A)
}

// rotate one bit left.
func rol(cpu *CPU, val *uint8) {
	carry := *val & 0x80 // next carry is bit 7
	*val <<= 1

	// bit 0 is set to prev carry
	if cpu.P.C() {
		*val |= 1 << 0
	}

	cpu.tick()
	cpu.P.checkNZ(*val)
	cpu.P.writeBit(pbitC, carry != 0)
}

// rotate one bit right.
func ror(cpu *CPU, val *uint8) {
	carry := *val & 0x01 // next carry is bit 0
	*val >>= 1

	// bit 7 is set to prev carry
	if cpu.P.C() {
		*val |= 1 << 7
	}

	cpu.tick()
	cpu.P.checkNZ(*val)
	cpu.P.writeBit(pbitC, carry != 0)
}

// shift one bit left.
func asl(cpu *CPU, val *uint8) {
	carry := *val & 0x80 // carry is bit 7
	*val <<= 1
	cpu.tick()
	cpu.P.checkNZ(*val)
	cpu.P.writeBit(pbitC, carry != 0)
}

// shift one bit right.
func lsr(cpu *CPU, val *uint8) {
	carry := *val & 0x01 // carry is bit 0
	*val >>= 1
	cpu.tick()
	cpu.P.checkNZ(*val)
	cpu.P.writeBit(pbitC, carry != 0)
}

// test bits in memory with accumulator.
func bit(cpu *CPU, val uint8) {
	// Copy bits 7 and 6 (N and V)
	cpu.P &= 0b00111111
	cpu.P |= P(val & 0b11000000)
	cpu.P.checkZ(cpu.A & val)
}

// test and set bits in memory against accumulator.
func tsb(cpu *CPU, oper uint16) {
	val := cpu.Read8(oper)
	cpu.P.checkZ(cpu.A & val)
	cpu.tick()
	cpu.Write8(oper, val|cpu.A)
}

// test and reset bits in memory against accumulator.
func trb(cpu *CPU, oper uint16) {
	val := cpu.Read8(oper)
	cpu.P.checkZ(cpu.A & val)
	cpu.tick()
	cpu.Write8(oper, val&^cpu.A)
}

// compare register with memory.
func compare(cpu *CPU, reg, val uint8) {
	cpu.P.checkNZ(reg - val)
	cpu.P.writeBit(pbitC, val <= reg)
}

// increment memory by one.
func inc(cpu *CPU, val *uint8) {
	cpu.tick()
	*val++
	cpu.P.checkNZ(*val)
}

// decrement memory by one.
func dec(cpu *CPU, val *uint8) {
	cpu.tick()
	*val--
	cpu.P.checkNZ(*val)
}

// load accumulator with memory.
func lda(cpu *CPU, val uint8) {
	cpu.A = val
	cpu.P.checkNZ(cpu.A)
}

// load index x with memory.
func ldx(cpu *CPU, val uint8) {
	cpu.X = val
	cpu.P.checkNZ(cpu.X)
}

// load index y with memory.
func ldy(cpu *CPU, val uint8) {
	cpu.Y = val
	cpu.P.checkNZ(cpu.Y)
}
