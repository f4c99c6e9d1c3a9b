package tscript

// Stock scripts, ready to install or to flash into a board EEPROM. The
// octal digits of each instruction spell out with-prev, region start,
// region end, red, green, blue.

// Rainbow dims the whole chain from black up to white, then turns the six
// middle regions one by one to red, yellow, green, cyan, blue and purple,
// and finally dims every region back down to black.
var Rainbow = []uint16{
	// all black to all white
	0o0007000,
	0o0007111,
	0o0007222,
	0o0007333,
	0o0007444,
	0o0007555,
	0o0007666,
	0o0007777,

	// region 1 white to red
	0o0011766,
	0o0011755,
	0o0011744,
	0o0011733,
	0o0011722,
	0o0011711,
	0o0011700,
	// region 2 white to yellow
	0o0022776,
	0o0022775,
	0o0022774,
	0o0022773,
	0o0022772,
	0o0022771,
	0o0022770,
	// region 3 white to green
	0o0033676,
	0o0033575,
	0o0033474,
	0o0033373,
	0o0033272,
	0o0033171,
	0o0033070,
	// region 4 white to cyan
	0o0044677,
	0o0044577,
	0o0044477,
	0o0044377,
	0o0044277,
	0o0044177,
	0o0044077,
	// region 5 white to blue
	0o0055667,
	0o0055557,
	0o0055447,
	0o0055337,
	0o0055227,
	0o0055117,
	0o0055007,
	// region 6 white to purple
	0o0066767,
	0o0066757,
	0o0066747,
	0o0066737,
	0o0066727,
	0o0066717,
	0o0066707,

	// region 0 white to black
	0o0000666,
	0o0000555,
	0o0000444,
	0o0000333,
	0o0000222,
	0o0000111,
	0o0000000,
	// region 1 red to black
	0o0011600,
	0o0011500,
	0o0011400,
	0o0011300,
	0o0011200,
	0o0011100,
	0o0011000,
	// region 2 yellow to black
	0o0022660,
	0o0022550,
	0o0022440,
	0o0022330,
	0o0022220,
	0o0022110,
	0o0022000,
	// region 3 green to black
	0o0033060,
	0o0033050,
	0o0033040,
	0o0033030,
	0o0033020,
	0o0033010,
	0o0033000,
	// region 4 cyan to black
	0o0044066,
	0o0044055,
	0o0044044,
	0o0044033,
	0o0044022,
	0o0044011,
	0o0044000,
	// region 5 blue to black
	0o0055006,
	0o0055005,
	0o0055004,
	0o0055003,
	0o0055002,
	0o0055001,
	0o0055000,
	// region 6 purple to black
	0o0066606,
	0o0066505,
	0o0066404,
	0o0066303,
	0o0066202,
	0o0066101,
	0o0066000,
	// region 7 white to black
	0o0077666,
	0o0077555,
	0o0077444,
	0o0077333,
	0o0077222,
	0o0077111,
	0o0077000,

	0o0070000,
}

// BouncingBlock bounces a red block over a blue background; every pass the
// red gets brighter and the blue dimmer until the block erases the last of
// the background.
var BouncingBlock = []uint16{
	// dim block right to left, background at 7
	0o0007007,
	0o0177100,
	0o0007007,
	0o0166100,
	0o0007007,
	0o0155100,
	0o0007007,
	0o0144100,
	0o0007007,
	0o0133100,
	0o0007007,
	0o0122100,
	0o0007007,
	0o0111100,
	0o0007007,
	0o0100100,

	// left to right, red 3 on background 5
	0o0007005,
	0o0100300,
	0o0007005,
	0o0111300,
	0o0007005,
	0o0122300,
	0o0007005,
	0o0133300,
	0o0007005,
	0o0144300,
	0o0007005,
	0o0155300,
	0o0007005,
	0o0166300,
	0o0007005,
	0o0177300,

	// back, red 4 on background 4
	0o0007004,
	0o0177400,
	0o0007004,
	0o0166400,
	0o0007004,
	0o0155400,
	0o0007004,
	0o0144400,
	0o0007004,
	0o0133400,
	0o0007004,
	0o0122400,
	0o0007004,
	0o0111400,
	0o0007004,
	0o0100400,

	// left to right, red 5 on background 3
	0o0007003,
	0o0100500,
	0o0007003,
	0o0111500,
	0o0007003,
	0o0122500,
	0o0007003,
	0o0133500,
	0o0007003,
	0o0144500,
	0o0007003,
	0o0155500,
	0o0007003,
	0o0166500,
	0o0007003,
	0o0177500,

	// back, red 6 on background 2
	0o0007002,
	0o0177600,
	0o0007002,
	0o0166600,
	0o0007002,
	0o0155600,
	0o0007002,
	0o0144600,
	0o0007002,
	0o0133600,
	0o0007002,
	0o0122600,
	0o0007002,
	0o0111600,
	0o0007002,
	0o0100600,

	// left to right, red 7 on background 1
	0o0007001,
	0o0100700,
	0o0007001,
	0o0111700,
	0o0007001,
	0o0122700,
	0o0007001,
	0o0133700,
	0o0007001,
	0o0144700,
	0o0007001,
	0o0155700,
	0o0007001,
	0o0166700,
	0o0007001,
	0o0177700,

	// back, full red erasing the background
	0o0007000,
	0o0177700,
	0o0007000,
	0o0166700,
	0o0007000,
	0o0155700,
	0o0007000,
	0o0144700,
	0o0007000,
	0o0133700,
	0o0007000,
	0o0122700,
	0o0007000,
	0o0111700,
	0o0007000,
	0o0100700,

	0o0070000,
}

// ColorMix walks a red block and a green block towards each other over a
// white background; where they overlap the mix shows yellow. At the far
// ends they turn around and walk back.
var ColorMix = []uint16{
	0o0007777, // 01234567
	0o0100700, // r-------

	0o0007777,
	0o0100700, // 01234567
	0o0177070, // r------g

	0o0007777,
	0o0101700, // 01234567
	0o0177070, // rr-----g

	0o0007777,
	0o0101700, // 01234567
	0o0167070, // rr----gg

	0o0007777,
	0o0112700, // 01234567
	0o0167070, // -rr---gg

	0o0007777,
	0o0112700, // 01234567
	0o0156070, // -rr--gg-

	0o0007777,
	0o0123700, // 01234567
	0o0156070, // --rr-gg-

	0o0007777,
	0o0123700, // 01234567
	0o0145070, // --rrgg--

	0o0007777,
	0o0133700, // 01234567
	0o0144770, // ---ryg--
	0o0155070,

	0o0007777, // 01234567
	0o0134770, // ---yy---

	0o0007777,
	0o0155700, // 01234567
	0o0144770, // ---gyr--
	0o0133070,

	0o0007777,
	0o0145700, // 01234567
	0o0123070, // --ggrr--

	0o0007777,
	0o0156700, // 01234567
	0o0123070, // --gg-rr-

	0o0007777,
	0o0156700, // 01234567
	0o0112070, // -gg--rr-

	0o0007777,
	0o0167700, // 01234567
	0o0112070, // -gg---rr

	0o0007777,
	0o0167700, // 01234567
	0o0101070, // gg----rr

	0o0007777,
	0o0177700, // 01234567
	0o0101070, // gg-----r

	0o0007777,
	0o0177700, // 01234567
	0o0100070, // g------r

	0o0007777, // 01234567
	0o0100070, // g-------

	0o0007777, // 01234567

	// and back
	0o0007777, // 01234567
	0o0100070, // g-------

	0o0007777,
	0o0177700, // 01234567
	0o0100070, // g------r

	0o0007777,
	0o0177700, // 01234567
	0o0101070, // gg-----r

	0o0007777,
	0o0167700, // 01234567
	0o0101070, // gg----rr

	0o0007777,
	0o0167700, // 01234567
	0o0112070, // -gg---rr

	0o0007777,
	0o0156700, // 01234567
	0o0112070, // -gg--rr-

	0o0007777,
	0o0156700, // 01234567
	0o0123070, // --gg-rr-

	0o0007777,
	0o0145700, // 01234567
	0o0123070, // --ggrr--

	0o0007777,
	0o0155700, // 01234567
	0o0144770, // ---gyr--
	0o0133070,

	0o0007777, // 01234567
	0o0134770, // ---yy---

	0o0007777,
	0o0133700, // 01234567
	0o0144770, // ---ryg--
	0o0155070,

	0o0007777,
	0o0123700, // 01234567
	0o0145070, // --rrgg--

	0o0007777,
	0o0123700, // 01234567
	0o0156070, // --rr-gg-

	0o0007777,
	0o0112700, // 01234567
	0o0156070, // -rr--gg-

	0o0007777,
	0o0112700, // 01234567
	0o0167070, // -rr---gg

	0o0007777,
	0o0101700, // 01234567
	0o0167070, // rr----gg

	0o0007777,
	0o0101700, // 01234567
	0o0177070, // rr-----g

	0o0007777,
	0o0100700, // 01234567
	0o0177070, // r------g

	0o0007777, // 01234567
	0o0100700, // r-------

	0o0007777, // 01234567

	0o0070000,
}

// Heartbeat pulses the whole chain red twice, the second beat stronger,
// then rests in faint green for a long pause.
var Heartbeat = []uint16{
	// first beat
	0o0007100,
	0o0007100,
	0o0007100,
	0o0007300,
	0o0007500,
	0o0007700,
	0o0007700,
	0o0007500,
	0o0007300,
	0o0007100,
	// second beat
	0o0007100,
	0o0007300,
	0o0007500,
	0o0007700,
	0o0007700,
	0o0007700,
	0o0007700,
	0o0007700,
	0o0007700,
	0o0007500,
	0o0007300,
	0o0007100,

	// fade
	0o0007100,
	0o0007100,
	// long pause
	0o0007010,
	0o0007010,
	0o0007010,
	0o0007010,
	0o0007010,
	0o0007010,
	0o0007010,
	0o0007010,
	0o0007010,
	0o0007010,
	0o0007010,
	0o0007010,
	0o0007010,
	0o0007010,
	0o0007010,
	0o0007010,
	0o0007010,
	0o0007010,
	0o0007010,
	0o0007010,
	// fade
	0o0007100,
	0o0007100,

	0o0070000,
}
