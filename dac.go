package ay3

// ChipType selects which digital-to-analog amplitude table the PSG uses.
// The two chip variants are otherwise identical. Both the fixed amplitude
// registers (which only ever produce odd 5-bit indices) and the envelope
// (which uses the full 5-bit range) are looked up in this table, so the
// choice changes the output levels of every channel; the envelope also
// gets finer steps on the YM2149.
type ChipType int

const (
	// YM is the Yamaha YM2149, with a full 32-level DAC table. This is
	// the default chip type.
	YM ChipType = iota

	// AY is the original General Instrument AY-3-8910, with only 16
	// distinct levels (each duplicated across two consecutive 5-bit
	// indices).
	AY
)

// ayDACTable is the AY-3-8910's digital-to-analog amplitude conversion
// table. Internally, amplitudes are represented as 5-bit values, but the
// AY only has 16 amplitude levels, so this table is quantized: each
// distinct level occupies two consecutive indices.
var ayDACTable = [32]float64{
	0.0, 0.0, 0.00999465934234, 0.00999465934234,
	0.0144502937362, 0.0144502937362, 0.0210574502174, 0.0210574502174,
	0.0307011520562, 0.0307011520562, 0.0455481803616, 0.0455481803616,
	0.0644998855573, 0.0644998855573, 0.107362478065, 0.107362478065,
	0.126588845655, 0.126588845655, 0.20498970016, 0.20498970016,
	0.292210269322, 0.292210269322, 0.372838941024, 0.372838941024,
	0.492530708782, 0.492530708782, 0.635324635691, 0.635324635691,
	0.805584802014, 0.805584802014, 1.0, 1.0,
}

// ymDACTable is the YM2149's digital-to-analog amplitude conversion table,
// utilizing the full 5-bit dynamic range. Only the envelope generator ever
// drives the table with all 32 distinct levels; amplitude register writes
// are still limited to 4 bits and get rebiased to an odd 5-bit index (see
// mixer.go).
var ymDACTable = [32]float64{
	0.0, 0.0, 0.00465400167849, 0.00772106507973,
	0.0109559777218, 0.0139620050355, 0.0169985503929, 0.0200198367285,
	0.024368657969, 0.029694056611, 0.0350652323186, 0.0403906309606,
	0.0485389486534, 0.0583352407111, 0.0680552376593, 0.0777752346075,
	0.0925154497597, 0.111085679408, 0.129747463188, 0.148485542077,
	0.17666895552, 0.211551079576, 0.246387426566, 0.281101701381,
	0.333730067903, 0.400427252613, 0.467383840696, 0.53443198291,
	0.635172045472, 0.75800717174, 0.879926756695, 1.0,
}

// dacTable returns the DAC lookup table for the given chip type.
func (c ChipType) dacTable() *[32]float64 {
	if c == AY {
		return &ayDACTable
	}
	return &ymDACTable
}
