// This file is part of GopherKart.
//
// GopherKart is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherKart is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherKart.  If not, see <https://www.gnu.org/licenses/>.

package addresses

// the canonical tables. entries in the MinimapSlots field are in course slot
// order: the sixteen racing courses followed by the six battle stages. the
// comment against each entry names the stock course natively in that slot
var catalogs = map[string]Catalog{
	GM4E01: {
		ID: GM4E01,

		ButtonsState:       0x803a4d6c,
		AltButtonsState:    0x8036b053,
		RedrawCourseSelect: 0x803ce5b4,
		SpamFlag:           0x802ed5f8,

		PlayerItemRolls: 0x802ed64f,

		CourseToStreamFileIndex: 0x8052eb04,
		GameAudioMain:           0x803b06d4,

		GPCupIndex:      0x803b0fc7,
		GPCourseIndex:   0x803b0fcb,
		GPAwardedScores: 0x8032c890,

		KartExtendedTerrainFlags: 0x802edfc8,

		LAN: LANSelect{
			Base:               0x803d1420,
			OffNextAppID:       0x567c,
			OffAppIDChanged:    0x5666,
			OffSkipNextDraw:    0x5668,
			OffSubstateID:      0x55f4,
			OffMarkForDeletion: 0x566c,
		},

		LabelSlots: []uint32{
			0x80336d42, 0x80336d2a, 0x80336cfe, 0x80336d1b, 0x80331ffc, 0x8033202a,
			0x80332054, 0x8033208b, 0x803320c0, 0x803320f4, 0x80332121, 0x80332156,
			0x80332183, 0x803321b2, 0x803321e4, 0x80332212, 0x80332246, 0x8033227b,
			0x803322b0, 0x803322df, 0x80331fe3, 0x80332015, 0x8033203f, 0x80332072,
			0x803320a7, 0x803320db, 0x8033210c, 0x8033213d, 0x8033216e, 0x8033219d,
			0x803321cb, 0x803321fd, 0x8033222d, 0x80332262, 0x80332297, 0x803322ca,
			0x80331eef, 0x80331f09, 0x80331f1f, 0x80331f3a, 0x80331f53, 0x803376a4,
			0x803376b2, 0x803376bc, 0x803376cf, 0x803376e0, 0x803376f0, 0x803376fd,
			0x8033770e, 0x8033771b, 0x8033772a, 0x80337738, 0x80337746, 0x80337756,
			0x80337767, 0x80337778, 0x80337787, 0x80337637, 0x8033764d, 0x8033765f,
			0x80337676,
		},
		BattleLabelSlots: []uint32{
			0x803329d1, 0x80332a19, 0x803329f5, 0x80332a3d, 0x80332a85, 0x80332a61,
			0x803329e5, 0x80332a2d, 0x80332a09, 0x80332a51, 0x80332a99, 0x80332a75,
			0x8033784e,
		},

		MinimapSlots: []MinimapSlot{
			{Coords: [4]uint32{0x803cde5c, 0x803cde60, 0x803cde64, 0x803cde68}, Orientation: 0x801420d8}, // Luigi Circuit
			{Coords: [4]uint32{0x803cde0c, 0x803cde10, 0x803cde14, 0x803cde18}, Orientation: 0x80141ee0}, // Peach Beach
			{Coords: [4]uint32{0x803cddec, 0x803cddf0, 0x803cddf4, 0x803cddf8}, Orientation: 0x80141e14}, // Baby Park
			{Coords: [4]uint32{0x803cdf84, 0x803cdf88, 0x803cdf8c, 0x803cdf90}, Orientation: 0x8014299c}, // Dry Dry Desert
			{Coords: [4]uint32{0x803cdeb0, 0x803cdeb4, 0x803cdeb8, 0x803cdebc}, Orientation: 0x8014233c}, // Mushroom Bridge
			{Coords: [4]uint32{0x803cde74, 0x803cde78, 0x803cde7c, 0x803cde80}, Orientation: 0x801421a4}, // Mario Circuit
			{Coords: [4]uint32{0x803cde34, 0x803cde38, 0x803cde3c, 0x803cde40}, Orientation: 0x8014200c}, // Daisy Cruiser
			{Coords: [4]uint32{0x803cdee8, 0x803cdeec, 0x803cdef0, 0x803cdef4}, Orientation: 0x801424d4}, // Waluigi Stadium
			{Coords: [4]uint32{0x803cdfa4, 0x803cdfa8, 0x803cdfac, 0x803cdfb0}, Orientation: 0x80142a68}, // Sherbet Land
			{Coords: [4]uint32{0x803cdec8, 0x803cdecc, 0x803cded0, 0x803cded4}, Orientation: 0x80142408}, // Mushroom City
			{Coords: [4]uint32{0x803cde90, 0x803cde94, 0x803cde98, 0x803cde9c}, Orientation: 0x80142270}, // Yoshi Circuit
			{Coords: [4]uint32{0x803cdf40, 0x803cdf44, 0x803cdf48, 0x803cdf4c}, Orientation: 0x80142738}, // DK Mountain
			{Coords: [4]uint32{0x803cdf0c, 0x803cdf10, 0x803cdf14, 0x803cdf18}, Orientation: 0x801425a0}, // Wario Colosseum
			{Coords: [4]uint32{0x803cdf28, 0x803cdf2c, 0x803cdf30, 0x803cdf34}, Orientation: 0x8014266c}, // Dino Dino Jungle
			{Coords: [4]uint32{0x803cdf5c, 0x803cdf60, 0x803cdf64, 0x803cdf68}, Orientation: 0x80142804}, // Bowser's Castle
			{Coords: [4]uint32{0x803cdf70, 0x803cdf74, 0x803cdf78, 0x803cdf7c}, Orientation: 0x801428d0}, // Rainbow Road
			{Coords: [4]uint32{0x803cdff4, 0x803cdff8, 0x803cdffc, 0x803ce000}, Orientation: 0x80142c14}, // Cookie Land
			{Coords: [4]uint32{0x803cdfc4, 0x803cdfc8, 0x803cdfcc, 0x803cdfd0}, Orientation: 0x80142b6c}, // Nintendo GameCube
			{Coords: [4]uint32{0x803cdfd4, 0x803cdfd8, 0x803cdfdc, 0x803cdfe0}, Orientation: 0x80142ba4}, // Block City
			{Coords: [4]uint32{0x803ce004, 0x803ce008, 0x803ce00c, 0x803ce010}, Orientation: 0x80142c4c}, // Pipe Plaza
			{Coords: [4]uint32{0x803cdfb4, 0x803cdfb8, 0x803cdfbc, 0x803cdfc0}, Orientation: 0x80142b34}, // Luigi's Mansion
			{Coords: [4]uint32{0x803cdfe4, 0x803cdfe8, 0x803cdfec, 0x803cdff0}, Orientation: 0x80142bdc}, // Tilt-A-Kart
		},
	},

	GM4P01: {
		ID: GM4P01,

		ButtonsState:       0x803aeb8c,
		AltButtonsState:    0x80374e93,
		RedrawCourseSelect: 0x803d83d4,
		SpamFlag:           0x802f90ec,

		PlayerItemRolls: 0x802f9d06,

		CourseToStreamFileIndex: 0x80538944,
		GameAudioMain:           0x803ba4f4,

		GPCupIndex:      0x803bade7,
		GPCourseIndex:   0x803badeb,
		GPAwardedScores: 0x803366d0,

		KartExtendedTerrainFlags: 0x80308588,

		LAN: LANSelect{
			Base:               0x803db240,
			OffNextAppID:       0x565c,
			OffAppIDChanged:    0x5646,
			OffSkipNextDraw:    0x5648,
			OffSubstateID:      0x55d4,
			OffMarkForDeletion: 0x564c,
		},

		LabelSlots: []uint32{
			0x80340b82, 0x80340b6a, 0x80340b3e, 0x80340b5b, 0x8033bdcc, 0x8033bdfa,
			0x8033be24, 0x8033be5b, 0x8033be90, 0x8033bec4, 0x8033bef1, 0x8033bf26,
			0x8033bf53, 0x8033bf82, 0x8033bfb4, 0x8033bfe2, 0x8033c016, 0x8033c04b,
			0x8033c080, 0x8033c0af, 0x8033bdb3, 0x8033bde5, 0x8033be0f, 0x8033be42,
			0x8033be77, 0x8033beab, 0x8033bedc, 0x8033bf0d, 0x8033bf3e, 0x8033bf6d,
			0x8033bf9b, 0x8033bfcd, 0x8033bffd, 0x8033c032, 0x8033c067, 0x8033c09a,
			0x8033bcbf, 0x8033bcd9, 0x8033bcef, 0x8033bd0a, 0x8033bd23, 0x803414e4,
			0x803414f2, 0x803414fc, 0x8034150f, 0x80341520, 0x80341530, 0x8034153d,
			0x8034154e, 0x8034155b, 0x8034156a, 0x80341578, 0x80341586, 0x80341596,
			0x803415a7, 0x803415b8, 0x803415c7, 0x80341477, 0x8034148d, 0x8034149f,
			0x803414b6,
		},
		BattleLabelSlots: []uint32{
			0x8033c7a1, 0x8033c7e9, 0x8033c7c5, 0x8033c80d, 0x8033c855, 0x8033c831,
			0x8033c7b5, 0x8033c7fd, 0x8033c7d9, 0x8033c821, 0x8033c869, 0x8033c845,
			0x8034168e,
		},

		MinimapSlots: []MinimapSlot{
			{Coords: [4]uint32{0x803d7c9c, 0x803d7ca0, 0x803d7ca4, 0x803d7ca8}, Orientation: 0x80142108}, // Luigi Circuit
			{Coords: [4]uint32{0x803d7c4c, 0x803d7c50, 0x803d7c54, 0x803d7c58}, Orientation: 0x80141f10}, // Peach Beach
			{Coords: [4]uint32{0x803d7c2c, 0x803d7c30, 0x803d7c34, 0x803d7c38}, Orientation: 0x80141e44}, // Baby Park
			{Coords: [4]uint32{0x803d7dc4, 0x803d7dc8, 0x803d7dcc, 0x803d7dd0}, Orientation: 0x801429cc}, // Dry Dry Desert
			{Coords: [4]uint32{0x803d7cf0, 0x803d7cf4, 0x803d7cf8, 0x803d7cfc}, Orientation: 0x8014236c}, // Mushroom Bridge
			{Coords: [4]uint32{0x803d7cb4, 0x803d7cb8, 0x803d7cbc, 0x803d7cc0}, Orientation: 0x801421d4}, // Mario Circuit
			{Coords: [4]uint32{0x803d7c74, 0x803d7c78, 0x803d7c7c, 0x803d7c80}, Orientation: 0x8014203c}, // Daisy Cruiser
			{Coords: [4]uint32{0x803d7d28, 0x803d7d2c, 0x803d7d30, 0x803d7d34}, Orientation: 0x80142504}, // Waluigi Stadium
			{Coords: [4]uint32{0x803d7de4, 0x803d7de8, 0x803d7dec, 0x803d7df0}, Orientation: 0x80142a98}, // Sherbet Land
			{Coords: [4]uint32{0x803d7d08, 0x803d7d0c, 0x803d7d10, 0x803d7d14}, Orientation: 0x80142438}, // Mushroom City
			{Coords: [4]uint32{0x803d7cd0, 0x803d7cd4, 0x803d7cd8, 0x803d7cdc}, Orientation: 0x801422a0}, // Yoshi Circuit
			{Coords: [4]uint32{0x803d7d80, 0x803d7d84, 0x803d7d88, 0x803d7d8c}, Orientation: 0x80142768}, // DK Mountain
			{Coords: [4]uint32{0x803d7d4c, 0x803d7d50, 0x803d7d54, 0x803d7d58}, Orientation: 0x801425d0}, // Wario Colosseum
			{Coords: [4]uint32{0x803d7d68, 0x803d7d6c, 0x803d7d70, 0x803d7d74}, Orientation: 0x8014269c}, // Dino Dino Jungle
			{Coords: [4]uint32{0x803d7d9c, 0x803d7da0, 0x803d7da4, 0x803d7da8}, Orientation: 0x80142834}, // Bowser's Castle
			{Coords: [4]uint32{0x803d7db0, 0x803d7db4, 0x803d7db8, 0x803d7dbc}, Orientation: 0x80142900}, // Rainbow Road
			{Coords: [4]uint32{0x803d7e34, 0x803d7e38, 0x803d7e3c, 0x803d7e40}, Orientation: 0x80142c44}, // Cookie Land
			{Coords: [4]uint32{0x803d7e04, 0x803d7e08, 0x803d7e0c, 0x803d7e10}, Orientation: 0x80142b9c}, // Nintendo GameCube
			{Coords: [4]uint32{0x803d7e14, 0x803d7e18, 0x803d7e1c, 0x803d7e20}, Orientation: 0x80142bd4}, // Block City
			{Coords: [4]uint32{0x803d7e44, 0x803d7e48, 0x803d7e4c, 0x803d7e50}, Orientation: 0x80142c7c}, // Pipe Plaza
			{Coords: [4]uint32{0x803d7df4, 0x803d7df8, 0x803d7dfc, 0x803d7e00}, Orientation: 0x80142b64}, // Luigi's Mansion
			{Coords: [4]uint32{0x803d7e24, 0x803d7e28, 0x803d7e2c, 0x803d7e30}, Orientation: 0x80142c0c}, // Tilt-A-Kart
		},
	},

	GM4J01: {
		ID: GM4J01,

		ButtonsState:       0x803bf38c,
		AltButtonsState:    0x80385673,
		RedrawCourseSelect: 0x803e8bd4,
		SpamFlag:           0x80309b6c,

		PlayerItemRolls: 0x8030a786,

		CourseToStreamFileIndex: 0x8053fc5c,
		GameAudioMain:           0x803cacf4,

		GPCupIndex:      0x803cb5e7,
		GPCourseIndex:   0x803cb5eb,
		GPAwardedScores: 0x80346eb0,

		KartExtendedTerrainFlags: 0x80319008,

		LAN: LANSelect{
			Base:               0x803eba40,
			OffNextAppID:       0x567c,
			OffAppIDChanged:    0x5666,
			OffSkipNextDraw:    0x5668,
			OffSubstateID:      0x55f4,
			OffMarkForDeletion: 0x566c,
		},

		LabelSlots: []uint32{
			0x80351362, 0x8035134a, 0x8035131e, 0x8035133b, 0x8034c61c, 0x8034c64a,
			0x8034c674, 0x8034c6ab, 0x8034c6e0, 0x8034c714, 0x8034c741, 0x8034c776,
			0x8034c7a3, 0x8034c7d2, 0x8034c804, 0x8034c832, 0x8034c866, 0x8034c89b,
			0x8034c8d0, 0x8034c8ff, 0x8034c603, 0x8034c635, 0x8034c65f, 0x8034c692,
			0x8034c6c7, 0x8034c6fb, 0x8034c72c, 0x8034c75d, 0x8034c78e, 0x8034c7bd,
			0x8034c7eb, 0x8034c81d, 0x8034c84d, 0x8034c882, 0x8034c8b7, 0x8034c8ea,
			0x8034c50f, 0x8034c529, 0x8034c53f, 0x8034c55a, 0x8034c573, 0x80351cc4,
			0x80351cd2, 0x80351cdc, 0x80351cef, 0x80351d00, 0x80351d10, 0x80351d1d,
			0x80351d2e, 0x80351d3b, 0x80351d4a, 0x80351d58, 0x80351d66, 0x80351d76,
			0x80351d87, 0x80351d98, 0x80351da7, 0x80351c57, 0x80351c6d, 0x80351c7f,
			0x80351c96,
		},
		BattleLabelSlots: []uint32{
			0x8034cff1, 0x8034d039, 0x8034d015, 0x8034d05d, 0x8034d0a5, 0x8034d081,
			0x8034d005, 0x8034d04d, 0x8034d029, 0x8034d071, 0x8034d0b9, 0x8034d095,
			0x80351e6e,
		},

		MinimapSlots: []MinimapSlot{
			{Coords: [4]uint32{0x803e847c, 0x803e8480, 0x803e8484, 0x803e8488}, Orientation: 0x801420d8}, // Luigi Circuit
			{Coords: [4]uint32{0x803e842c, 0x803e8430, 0x803e8434, 0x803e8438}, Orientation: 0x80141ee0}, // Peach Beach
			{Coords: [4]uint32{0x803e840c, 0x803e8410, 0x803e8414, 0x803e8418}, Orientation: 0x80141e14}, // Baby Park
			{Coords: [4]uint32{0x803e85a4, 0x803e85a8, 0x803e85ac, 0x803e85b0}, Orientation: 0x8014299c}, // Dry Dry Desert
			{Coords: [4]uint32{0x803e84d0, 0x803e84d4, 0x803e84d8, 0x803e84dc}, Orientation: 0x8014233c}, // Mushroom Bridge
			{Coords: [4]uint32{0x803e8494, 0x803e8498, 0x803e849c, 0x803e84a0}, Orientation: 0x801421a4}, // Mario Circuit
			{Coords: [4]uint32{0x803e8454, 0x803e8458, 0x803e845c, 0x803e8460}, Orientation: 0x8014200c}, // Daisy Cruiser
			{Coords: [4]uint32{0x803e8508, 0x803e850c, 0x803e8510, 0x803e8514}, Orientation: 0x801424d4}, // Waluigi Stadium
			{Coords: [4]uint32{0x803e85c4, 0x803e85c8, 0x803e85cc, 0x803e85d0}, Orientation: 0x80142a68}, // Sherbet Land
			{Coords: [4]uint32{0x803e84e8, 0x803e84ec, 0x803e84f0, 0x803e84f4}, Orientation: 0x80142408}, // Mushroom City
			{Coords: [4]uint32{0x803e84b0, 0x803e84b4, 0x803e84b8, 0x803e84bc}, Orientation: 0x80142270}, // Yoshi Circuit
			{Coords: [4]uint32{0x803e8560, 0x803e8564, 0x803e8568, 0x803e856c}, Orientation: 0x80142738}, // DK Mountain
			{Coords: [4]uint32{0x803e852c, 0x803e8530, 0x803e8534, 0x803e8538}, Orientation: 0x801425a0}, // Wario Colosseum
			{Coords: [4]uint32{0x803e8548, 0x803e854c, 0x803e8550, 0x803e8554}, Orientation: 0x8014266c}, // Dino Dino Jungle
			{Coords: [4]uint32{0x803e857c, 0x803e8580, 0x803e8584, 0x803e8588}, Orientation: 0x80142804}, // Bowser's Castle
			{Coords: [4]uint32{0x803e8590, 0x803e8594, 0x803e8598, 0x803e859c}, Orientation: 0x801428d0}, // Rainbow Road
			{Coords: [4]uint32{0x803e8614, 0x803e8618, 0x803e861c, 0x803e8620}, Orientation: 0x80142c14}, // Cookie Land
			{Coords: [4]uint32{0x803e85e4, 0x803e85e8, 0x803e85ec, 0x803e85f0}, Orientation: 0x80142b6c}, // Nintendo GameCube
			{Coords: [4]uint32{0x803e85f4, 0x803e85f8, 0x803e85fc, 0x803e8600}, Orientation: 0x80142ba4}, // Block City
			{Coords: [4]uint32{0x803e8624, 0x803e8628, 0x803e862c, 0x803e8630}, Orientation: 0x80142c4c}, // Pipe Plaza
			{Coords: [4]uint32{0x803e85d4, 0x803e85d8, 0x803e85dc, 0x803e85e0}, Orientation: 0x80142b34}, // Luigi's Mansion
			{Coords: [4]uint32{0x803e8604, 0x803e8608, 0x803e860c, 0x803e8610}, Orientation: 0x80142bdc}, // Tilt-A-Kart
		},
	},

	GM4E01dbg: {
		ID: GM4E01dbg,

		ButtonsState:       0x803fa764,
		AltButtonsState:    0x803b5353,
		RedrawCourseSelect: 0x80419954,
		SpamFlag:           0x8032b158,

		PlayerItemRolls: 0x8032b1af,

		CourseToStreamFileIndex: 0x8057aa64,
		GameAudioMain:           0x803fb220,

		GPCupIndex:      0x803fbb13,
		GPCourseIndex:   0x803fbb17,
		GPAwardedScores: 0x8036f410,

		KartExtendedTerrainFlags: 0x8032bb28,

		LAN: LANSelect{
			Base:               0x8041bf80,
			OffNextAppID:       0x55e4,
			OffAppIDChanged:    0x55ce,
			OffSkipNextDraw:    0x55d0,
			OffSubstateID:      0x555c,
			OffMarkForDeletion: 0x55d4,
		},

		LabelSlots: []uint32{
			0x8037d4e6, 0x8037d4ce, 0x8037d4a2, 0x8037d4bf, 0x8037549c, 0x803754ca,
			0x803754f4, 0x8037552b, 0x80375560, 0x80375594, 0x803755c1, 0x803755f6,
			0x80375623, 0x80375652, 0x80375684, 0x803756b2, 0x803756e6, 0x8037571b,
			0x80375750, 0x8037577f, 0x80375483, 0x803754b5, 0x803754df, 0x80375512,
			0x80375547, 0x8037557b, 0x803755ac, 0x803755dd, 0x8037560e, 0x8037563d,
			0x8037566b, 0x8037569d, 0x803756cd, 0x80375702, 0x80375737, 0x8037576a,
			0x8037538f, 0x803753a9, 0x803753bf, 0x803753da, 0x803753f3, 0x8037e814,
			0x8037e822, 0x8037e82c, 0x8037e83f, 0x8037e850, 0x8037e860, 0x8037e86d,
			0x8037e87e, 0x8037e88b, 0x8037e89a, 0x8037e8a8, 0x8037e8b6, 0x8037e8c6,
			0x8037e8d7, 0x8037e8e8, 0x8037e8f7, 0x8037e7a7, 0x8037e7bd, 0x8037e7cf,
			0x8037e7e6,
		},
		BattleLabelSlots: []uint32{
			0x80376239, 0x80376281, 0x8037625d, 0x803762a5, 0x803762ed, 0x803762c9,
			0x8037624d, 0x80376295, 0x80376271, 0x803762b9, 0x80376301, 0x803762dd,
			0x8037e9be,
		},

		MinimapSlots: []MinimapSlot{
			{Coords: [4]uint32{0x80419170, 0x80419174, 0x80419178, 0x8041917c}, Orientation: 0x801544a4}, // Luigi Circuit
			{Coords: [4]uint32{0x80419120, 0x80419124, 0x80419128, 0x8041912c}, Orientation: 0x80154254}, // Peach Beach
			{Coords: [4]uint32{0x80419100, 0x80419104, 0x80419108, 0x8041910c}, Orientation: 0x8015415c}, // Baby Park
			{Coords: [4]uint32{0x80419298, 0x8041929c, 0x804192a0, 0x804192a4}, Orientation: 0x80154f4c}, // Dry Dry Desert
			{Coords: [4]uint32{0x804191c4, 0x804191c8, 0x804191cc, 0x804191d0}, Orientation: 0x8015478c}, // Mushroom Bridge
			{Coords: [4]uint32{0x80419188, 0x8041918c, 0x80419190, 0x80419194}, Orientation: 0x8015459c}, // Mario Circuit
			{Coords: [4]uint32{0x80419148, 0x8041914c, 0x80419150, 0x80419154}, Orientation: 0x801543ac}, // Daisy Cruiser
			{Coords: [4]uint32{0x804191fc, 0x80419200, 0x80419204, 0x80419208}, Orientation: 0x8015497c}, // Waluigi Stadium
			{Coords: [4]uint32{0x804192b8, 0x804192bc, 0x804192c0, 0x804192c4}, Orientation: 0x80155044}, // Sherbet Land
			{Coords: [4]uint32{0x804191dc, 0x804191e0, 0x804191e4, 0x804191e8}, Orientation: 0x80154884}, // Mushroom City
			{Coords: [4]uint32{0x804191a4, 0x804191a8, 0x804191ac, 0x804191b0}, Orientation: 0x80154694}, // Yoshi Circuit
			{Coords: [4]uint32{0x80419254, 0x80419258, 0x8041925c, 0x80419260}, Orientation: 0x80154c64}, // DK Mountain
			{Coords: [4]uint32{0x80419220, 0x80419224, 0x80419228, 0x8041922c}, Orientation: 0x80154a74}, // Wario Colosseum
			{Coords: [4]uint32{0x8041923c, 0x80419240, 0x80419244, 0x80419248}, Orientation: 0x80154b6c}, // Dino Dino Jungle
			{Coords: [4]uint32{0x80419270, 0x80419274, 0x80419278, 0x8041927c}, Orientation: 0x80154d5c}, // Bowser's Castle
			{Coords: [4]uint32{0x80419284, 0x80419288, 0x8041928c, 0x80419290}, Orientation: 0x80154e54}, // Rainbow Road
			{Coords: [4]uint32{0x80419308, 0x8041930c, 0x80419310, 0x80419314}, Orientation: 0x8015521c}, // Cookie Land
			{Coords: [4]uint32{0x804192d8, 0x804192dc, 0x804192e0, 0x804192e4}, Orientation: 0x80155174}, // Nintendo GameCube
			{Coords: [4]uint32{0x804192e8, 0x804192ec, 0x804192f0, 0x804192f4}, Orientation: 0x801551ac}, // Block City
			{Coords: [4]uint32{0x80419318, 0x8041931c, 0x80419320, 0x80419324}, Orientation: 0x80155254}, // Pipe Plaza
			{Coords: [4]uint32{0x804192c8, 0x804192cc, 0x804192d0, 0x804192d4}, Orientation: 0x8015513c}, // Luigi's Mansion
			{Coords: [4]uint32{0x804192f8, 0x804192fc, 0x80419300, 0x80419304}, Orientation: 0x801551e4}, // Tilt-A-Kart
		},
	},
}
