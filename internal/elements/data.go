package elements

// table lists every element by atomic number, H through Og.
var table = []Element{
	{Number: 1, Symbol: "H"},
	{Number: 2, Symbol: "He"},
	{Number: 3, Symbol: "Li"},
	{Number: 4, Symbol: "Be"},
	{Number: 5, Symbol: "B"},
	{Number: 6, Symbol: "C"},
	{Number: 7, Symbol: "N"},
	{Number: 8, Symbol: "O"},
	{Number: 9, Symbol: "F"},
	{Number: 10, Symbol: "Ne"},
	{Number: 11, Symbol: "Na"},
	{Number: 12, Symbol: "Mg"},
	{Number: 13, Symbol: "Al"},
	{Number: 14, Symbol: "Si"},
	{Number: 15, Symbol: "P"},
	{Number: 16, Symbol: "S"},
	{Number: 17, Symbol: "Cl"},
	{Number: 18, Symbol: "Ar"},
	{Number: 19, Symbol: "K"},
	{Number: 20, Symbol: "Ca"},
	{Number: 21, Symbol: "Sc"},
	{Number: 22, Symbol: "Ti"},
	{Number: 23, Symbol: "V"},
	{Number: 24, Symbol: "Cr"},
	{Number: 25, Symbol: "Mn"},
	{Number: 26, Symbol: "Fe"},
	{Number: 27, Symbol: "Co"},
	{Number: 28, Symbol: "Ni"},
	{Number: 29, Symbol: "Cu"},
	{Number: 30, Symbol: "Zn"},
	{Number: 31, Symbol: "Ga"},
	{Number: 32, Symbol: "Ge"},
	{Number: 33, Symbol: "As"},
	{Number: 34, Symbol: "Se"},
	{Number: 35, Symbol: "Br"},
	{Number: 36, Symbol: "Kr"},
	{Number: 37, Symbol: "Rb"},
	{Number: 38, Symbol: "Sr"},
	{Number: 39, Symbol: "Y"},
	{Number: 40, Symbol: "Zr"},
	{Number: 41, Symbol: "Nb"},
	{Number: 42, Symbol: "Mo"},
	{Number: 43, Symbol: "Tc"},
	{Number: 44, Symbol: "Ru"},
	{Number: 45, Symbol: "Rh"},
	{Number: 46, Symbol: "Pd"},
	{Number: 47, Symbol: "Ag"},
	{Number: 48, Symbol: "Cd"},
	{Number: 49, Symbol: "In"},
	{Number: 50, Symbol: "Sn"},
	{Number: 51, Symbol: "Sb"},
	{Number: 52, Symbol: "Te"},
	{Number: 53, Symbol: "I"},
	{Number: 54, Symbol: "Xe"},
	{Number: 55, Symbol: "Cs"},
	{Number: 56, Symbol: "Ba"},
	{Number: 57, Symbol: "La"},
	{Number: 58, Symbol: "Ce"},
	{Number: 59, Symbol: "Pr"},
	{Number: 60, Symbol: "Nd"},
	{Number: 61, Symbol: "Pm"},
	{Number: 62, Symbol: "Sm"},
	{Number: 63, Symbol: "Eu"},
	{Number: 64, Symbol: "Gd"},
	{Number: 65, Symbol: "Tb"},
	{Number: 66, Symbol: "Dy"},
	{Number: 67, Symbol: "Ho"},
	{Number: 68, Symbol: "Er"},
	{Number: 69, Symbol: "Tm"},
	{Number: 70, Symbol: "Yb"},
	{Number: 71, Symbol: "Lu"},
	{Number: 72, Symbol: "Hf"},
	{Number: 73, Symbol: "Ta"},
	{Number: 74, Symbol: "W"},
	{Number: 75, Symbol: "Re"},
	{Number: 76, Symbol: "Os"},
	{Number: 77, Symbol: "Ir"},
	{Number: 78, Symbol: "Pt"},
	{Number: 79, Symbol: "Au"},
	{Number: 80, Symbol: "Hg"},
	{Number: 81, Symbol: "Tl"},
	{Number: 82, Symbol: "Pb"},
	{Number: 83, Symbol: "Bi"},
	{Number: 84, Symbol: "Po"},
	{Number: 85, Symbol: "At"},
	{Number: 86, Symbol: "Rn"},
	{Number: 87, Symbol: "Fr"},
	{Number: 88, Symbol: "Ra"},
	{Number: 89, Symbol: "Ac"},
	{Number: 90, Symbol: "Th"},
	{Number: 91, Symbol: "Pa"},
	{Number: 92, Symbol: "U"},
	{Number: 93, Symbol: "Np"},
	{Number: 94, Symbol: "Pu"},
	{Number: 95, Symbol: "Am"},
	{Number: 96, Symbol: "Cm"},
	{Number: 97, Symbol: "Bk"},
	{Number: 98, Symbol: "Cf"},
	{Number: 99, Symbol: "Es"},
	{Number: 100, Symbol: "Fm"},
	{Number: 101, Symbol: "Md"},
	{Number: 102, Symbol: "No"},
	{Number: 103, Symbol: "Lr"},
	{Number: 104, Symbol: "Rf"},
	{Number: 105, Symbol: "Db"},
	{Number: 106, Symbol: "Sg"},
	{Number: 107, Symbol: "Bh"},
	{Number: 108, Symbol: "Hs"},
	{Number: 109, Symbol: "Mt"},
	{Number: 110, Symbol: "Ds"},
	{Number: 111, Symbol: "Rg"},
	{Number: 112, Symbol: "Cn"},
	{Number: 113, Symbol: "Nh"},
	{Number: 114, Symbol: "Fl"},
	{Number: 115, Symbol: "Mc"},
	{Number: 116, Symbol: "Lv"},
	{Number: 117, Symbol: "Ts"},
	{Number: 118, Symbol: "Og"},
}

// namesJA holds the Japanese display names used in gameplay.
var namesJA = map[int]string{
	1:  "水素",
	2:  "ヘリウム",
	3:  "リチウム",
	4:  "ベリリウム",
	5:  "ホウ素",
	6:  "炭素",
	7:  "窒素",
	8:  "酸素",
	9:  "フッ素",
	10: "ネオン",
	11: "ナトリウム",
	12: "マグネシウム",
	13: "アルミニウム",
	14: "ケイ素",
	15: "リン",
	16: "硫黄",
	17: "塩素",
	18: "アルゴン",
	19: "カリウム",
	20: "カルシウム",
}

// positions places 1..20 on the simplified main-group board.
var positions = map[int]Position{
	1:  {Period: 1, Group: 1},
	2:  {Period: 1, Group: 18},
	3:  {Period: 2, Group: 1},
	4:  {Period: 2, Group: 2},
	5:  {Period: 2, Group: 13},
	6:  {Period: 2, Group: 14},
	7:  {Period: 2, Group: 15},
	8:  {Period: 2, Group: 16},
	9:  {Period: 2, Group: 17},
	10: {Period: 2, Group: 18},
	11: {Period: 3, Group: 1},
	12: {Period: 3, Group: 2},
	13: {Period: 3, Group: 13},
	14: {Period: 3, Group: 14},
	15: {Period: 3, Group: 15},
	16: {Period: 3, Group: 16},
	17: {Period: 3, Group: 17},
	18: {Period: 3, Group: 18},
	19: {Period: 4, Group: 1},
	20: {Period: 4, Group: 2},
}
