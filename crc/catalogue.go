package crc

// Catalogued CRC parameter sets. Values and names follow the teacher
// package's own catalogue (CCITT, CRC16/ARC, XMODEM, XMODEM2, CRC32, IEEE,
// Castagnoli/CRC32C, Koopman, CRC64ISO, CRC64ECMA), supplemented with the
// CDMA2000/CMS/DDS-110 16-bit sets that spec.md §4.3 names explicitly (as
// commented-out future work in the original source). Every entry here is
// wired into at least one table-width exercised by the builders in table.go.
var (
	// CCITT is the CCITT/X.25 16-bit CRC (poly 0x1021, init 0xFFFF,
	// unreflected).
	CCITT = &Parameters{Width: 16, Polynomial: 0x1021, Init: 0xFFFF, ReflectIn: false, ReflectOut: false, FinalXor: 0x0}

	// CRC16 is the CRC-16 parameter set, also known as ARC — spec.md §8's
	// catalogued minimum.
	CRC16 = &Parameters{Width: 16, Polynomial: 0x8005, Init: 0x0000, ReflectIn: true, ReflectOut: true, FinalXor: 0x0}

	// XMODEM is the unreflected CRC-16 variant commonly called "XMODEM".
	XMODEM = &Parameters{Width: 16, Polynomial: 0x1021, Init: 0x0000, ReflectIn: false, ReflectOut: false, FinalXor: 0x0}

	// XMODEM2 is another set of parameters commonly referred to as
	// "XMODEM", reflected this time.
	XMODEM2 = &Parameters{Width: 16, Polynomial: 0x8408, Init: 0x0000, ReflectIn: true, ReflectOut: true, FinalXor: 0x0}

	// CDMA2000 is CRC-16/CDMA2000 (poly 0xC867, init 0xFFFF, unreflected).
	CDMA2000 = &Parameters{Width: 16, Polynomial: 0xC867, Init: 0xFFFF, ReflectIn: false, ReflectOut: false, FinalXor: 0x0}

	// CMS is CRC-16/CMS (poly 0x8005, init 0xFFFF, unreflected).
	CMS = &Parameters{Width: 16, Polynomial: 0x8005, Init: 0xFFFF, ReflectIn: false, ReflectOut: false, FinalXor: 0x0}

	// DDS110 is CRC-16/DDS-110 (poly 0x8005, init 0x800D, unreflected).
	DDS110 = &Parameters{Width: 16, Polynomial: 0x8005, Init: 0x800D, ReflectIn: false, ReflectOut: false, FinalXor: 0x0}

	// CRC32 is by far the most commonly used CRC-32 polynomial and
	// parameter set.
	CRC32 = &Parameters{Width: 32, Polynomial: 0x04C11DB7, Init: 0xFFFFFFFF, ReflectIn: true, ReflectOut: true, FinalXor: 0xFFFFFFFF}
	// IEEE is an alias for CRC32.
	IEEE = CRC32

	// Castagnoli is the Castagnoli polynomial, used in iSCSI and also
	// provided by the standard library's hash/crc32 package.
	Castagnoli = &Parameters{Width: 32, Polynomial: 0x1EDC6F41, Init: 0xFFFFFFFF, ReflectIn: true, ReflectOut: true, FinalXor: 0xFFFFFFFF}
	// CRC32C is an alias for Castagnoli.
	CRC32C = Castagnoli

	// Koopman is the Koopman polynomial.
	Koopman = &Parameters{Width: 32, Polynomial: 0x741B8CD7, Init: 0xFFFFFFFF, ReflectIn: true, ReflectOut: true, FinalXor: 0xFFFFFFFF}

	// CRC64ISO is the parameter set commonly known as CRC-64-ISO.
	CRC64ISO = &Parameters{Width: 64, Polynomial: 0x000000000000001B, Init: 0xFFFFFFFFFFFFFFFF, ReflectIn: true, ReflectOut: true, FinalXor: 0xFFFFFFFFFFFFFFFF}

	// CRC64ECMA is the parameter set commonly known as CRC-64-ECMA.
	CRC64ECMA = &Parameters{Width: 64, Polynomial: 0x42F0E1EBA9EA3693, Init: 0xFFFFFFFFFFFFFFFF, ReflectIn: true, ReflectOut: true, FinalXor: 0xFFFFFFFFFFFFFFFF}
)
