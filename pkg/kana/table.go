package kana

import "fmt"

func m(romaji, hiragana, katakana string) *Kana {
	return &Kana{Romaji: romaji, Hiragana: hiragana, Katakana: katakana}
}

func mv(romaji, hiragana, katakana string, variants ...string) *Kana {
	k := m(romaji, hiragana, katakana)
	k.Variants = variants
	return k
}

func mhk(romaji, hiragana, katakana, hepburn, kunrei string) *Kana {
	k := m(romaji, hiragana, katakana)
	k.Hepburn = hepburn
	k.Kunrei = kunrei
	return k
}

func mkv(romaji, hiragana, katakana string, variants ...string) *Kana {
	k := mv(romaji, hiragana, katakana, variants...)
	k.KunreiVariant = true
	return k
}

// dakuten links accented as base's voiced (dakuten) form and returns base.
func dakuten(base, accented *Kana) *Kana {
	base.Dakuten = accented
	accented.unaccented = base
	return base
}

// handakuten links han as base's semi-voiced (han-dakuten) form.
func handakuten(base, han *Kana) *Kana {
	base.HanDakuten = han
	han.unaccented = base
	return base
}

// kanaList holds monographs and regular digraphs with no dakuten or
// han-dakuten versions, ported verbatim from KanaList in Kana.cpp.
var kanaList = []*Kana{
	// --- あ 行 ---
	m("a", "あ", "ア"), m("na", "な", "ナ"), m("ma", "ま", "マ"),
	m("ya", "や", "ヤ"), m("ra", "ら", "ラ"), m("wa", "わ", "ワ"),
	mv("qwa", "くゎ", "クヮ"), mv("swa", "すぁ", "スァ"), mv("tsa", "つぁ", "ツァ"),
	mv("nya", "にゃ", "ニャ"), mv("fa", "ふぁ", "ファ", "fwa", "hwa"),
	mv("fya", "ふゃ", "フャ"), mv("mya", "みゃ", "ミャ"), mv("rya", "りゃ", "リャ"),
	// --- い 行 ---
	m("i", "い", "イ"), m("ni", "に", "ニ"), m("mi", "み", "ミ"),
	m("ri", "り", "リ"), mhk("wyi", "ゐ", "ヰ", "i", "i"),
	mv("swi", "すぃ", "スィ"), mv("tsi", "つぃ", "ツィ"), mv("nyi", "にぃ", "ニィ"),
	mv("fi", "ふぃ", "フィ", "fyi", "fwi", "hwi"), mv("myi", "みぃ", "ミィ"),
	mv("ryi", "りぃ", "リィ"),
	// --- う 行 ---
	m("nu", "ぬ", "ヌ"), m("mu", "む", "ム"), m("yu", "ゆ", "ユ"),
	m("ru", "る", "ル"),
	mv("swu", "すぅ", "スゥ"), mv("nyu", "にゅ", "ニュ"), mv("fwu", "ふぅ", "フゥ"),
	mv("fyu", "ふゅ", "フュ"), mv("myu", "みゅ", "ミュ"), mv("ryu", "りゅ", "リュ"),
	// --- え 行 ---
	m("e", "え", "エ"), m("ne", "ね", "ネ"), m("me", "め", "メ"),
	m("re", "れ", "レ"), mhk("wye", "ゑ", "ヱ", "e", "e"),
	mv("ye", "いぇ", "イェ"), mv("swe", "すぇ", "スェ"), mv("tse", "つぇ", "ツェ"),
	mv("nye", "にぇ", "ニェ"), mv("fe", "ふぇ", "フェ", "fye", "fwe", "hwe"),
	mv("mye", "みぇ", "ミェ"), mv("rye", "りぇ", "リェ"),
	// --- お 行 ---
	m("o", "お", "オ"), m("no", "の", "ノ"), m("mo", "も", "モ"),
	m("yo", "よ", "ヨ"), m("ro", "ろ", "ロ"), mhk("wo", "を", "ヲ", "o", "o"),
	mv("swo", "すぉ", "スォ"), mv("tso", "つぉ", "ツォ"), mv("nyo", "にょ", "ニョ"),
	mv("fo", "ふぉ", "フォ", "fwo", "hwo"), mv("fyo", "ふょ", "フョ"),
	mv("myo", "みょ", "ミョ"), mv("ryo", "りょ", "リョ"),
	// Digraphs that only have a dakuten version
	m("va", "ゔぁ", "ヴァ"), m("vo", "ゔぉ", "ヴォ"), m("vya", "ゔゃ", "ヴャ"),
	m("vyu", "ゔゅ", "ヴュ"), m("vyo", "ゔょ", "ヴョ"),
	// 12 small letters (5 vowels, 2 k's, 3 y's, small 'wa' and small 'tsu') -
	// prefer 'l' versions for Rōmaji output
	mv("la", "ぁ", "ァ", "xa"), mv("li", "ぃ", "ィ", "xi"),
	mv("lu", "ぅ", "ゥ", "xu"), mv("le", "ぇ", "ェ", "xe", "lye", "xye"),
	mv("lo", "ぉ", "ォ", "xo"), mv("lka", "ゕ", "ヵ", "xka"),
	mv("lke", "ゖ", "ヶ", "xke"), mv("lya", "ゃ", "ャ", "xya"),
	mv("lyu", "ゅ", "ュ", "xyu"), mv("lyo", "ょ", "ョ", "xyo"),
	mv("lwa", "ゎ", "ヮ", "xwa"), mv("ltu", "っ", "ッ", "xtu"),
	// ん - keep as the last entry so N below can reference it
	m("n", "ん", "ン"),
}

// dakutenKanaList contains kana that have a dakuten version, but not an 'h'
// row (which also has han-dakuten, see handakutenKanaList below).
var dakutenKanaList = []*Kana{
	dakuten(m("ka", "か", "カ"), m("ga", "が", "ガ")),
	dakuten(m("sa", "さ", "サ"), m("za", "ざ", "ザ")),
	dakuten(m("ta", "た", "タ"), m("da", "だ", "ダ")),
	dakuten(m("kya", "きゃ", "キャ"), m("gya", "ぎゃ", "ギャ")),
	dakuten(mv("qa", "くぁ", "クァ", "kwa"), m("gwa", "ぐぁ", "グァ")),
	dakuten(mkv("sha", "しゃ", "シャ", "sya"), mkv("ja", "じゃ", "ジャ", "zya", "jya")),
	dakuten(mkv("cha", "ちゃ", "チャ", "tya"), mhk("dya", "ぢゃ", "ヂャ", "ja", "zya")),
	dakuten(m("tha", "てゃ", "テャ"), m("dha", "でゃ", "デャ")),
	dakuten(m("twa", "とぁ", "トァ"), m("dwa", "どぁ", "ドァ")),
	// --- い 行 ---
	dakuten(m("ki", "き", "キ"), m("gi", "ぎ", "ギ")),
	dakuten(mkv("shi", "し", "シ", "si"), mkv("ji", "じ", "ジ", "zi")),
	dakuten(mkv("chi", "ち", "チ", "ti"), mhk("di", "ぢ", "ヂ", "ji", "zi")),
	dakuten(m("wi", "うぃ", "ウィ"), m("vi", "ゔぃ", "ヴィ")),
	dakuten(mv("qi", "くぃ", "クィ", "kwi", "qwi"), m("gwi", "ぐぃ", "グィ")),
	dakuten(m("kyi", "きぃ", "キィ"), m("gyi", "ぎぃ", "ギィ")),
	dakuten(m("syi", "しぃ", "シィ"), mv("jyi", "じぃ", "ジィ", "zyi")),
	dakuten(m("tyi", "ちぃ", "チィ"), m("dyi", "ぢぃ", "ヂィ")),
	dakuten(m("twi", "とぃ", "トィ"), m("dwi", "どぃ", "ドィ")),
	dakuten(m("thi", "てぃ", "ティ"), m("dhi", "でぃ", "ディ")),
	// --- う 行 ---
	dakuten(mv("u", "う", "ウ", "wu"), m("vu", "ゔ", "ヴ")),
	dakuten(m("ku", "く", "ク"), m("gu", "ぐ", "グ")),
	dakuten(m("su", "す", "ス"), m("zu", "ず", "ズ")),
	dakuten(mkv("tsu", "つ", "ツ", "tu"), mhk("du", "づ", "ヅ", "zu", "zu")),
	dakuten(m("kyu", "きゅ", "キュ"), m("gyu", "ぎゅ", "ギュ")),
	dakuten(mv("qu", "くぅ", "クゥ", "kwu", "qwu"), m("gwu", "ぐぅ", "グゥ")),
	dakuten(mkv("shu", "しゅ", "シュ", "syu"), mkv("ju", "じゅ", "ジュ", "zyu", "jyu")),
	dakuten(mkv("chu", "ちゅ", "チュ", "tyu"), mhk("dyu", "ぢゅ", "ヂュ", "ju", "zyu")),
	dakuten(m("thu", "てゅ", "テュ"), m("dhu", "でゅ", "デュ")),
	dakuten(m("twu", "とぅ", "トゥ"), m("dwu", "どぅ", "ドゥ")),
	// --- え 行 ---
	dakuten(m("ke", "け", "ケ"), m("ge", "げ", "ゲ")),
	dakuten(m("kye", "きぇ", "キェ"), m("gye", "ぎぇ", "ギェ")),
	dakuten(m("se", "せ", "セ"), m("ze", "ぜ", "ゼ")),
	dakuten(m("te", "て", "テ"), m("de", "で", "デ")),
	dakuten(m("we", "うぇ", "ウェ"), m("ve", "ゔぇ", "ヴェ")),
	dakuten(mv("qe", "くぇ", "クェ", "kwe", "qwe"), m("gwe", "ぐぇ", "グェ")),
	dakuten(m("she", "しぇ", "シェ"), mv("je", "じぇ", "ジェ", "zye", "jye")),
	dakuten(mv("che", "ちぇ", "チェ", "tye"), m("dye", "ぢぇ", "ヂェ")),
	dakuten(m("the", "てぇ", "テェ"), m("dhe", "でぇ", "デェ")),
	dakuten(m("twe", "とぇ", "トェ"), m("dwe", "どぇ", "ドェ")),
	// --- お 行 ---
	dakuten(m("ko", "こ", "コ"), m("go", "ご", "ゴ")),
	dakuten(m("so", "そ", "ソ"), m("zo", "ぞ", "ゾ")),
	dakuten(m("to", "と", "ト"), m("do", "ど", "ド")),
	dakuten(m("kyo", "きょ", "キョ"), m("gyo", "ぎょ", "ギョ")),
	dakuten(mv("qo", "くぉ", "クォ", "kwo", "qwo"), m("gwo", "ぐぉ", "グォ")),
	dakuten(mkv("sho", "しょ", "ショ", "syo"), mkv("jo", "じょ", "ジョ", "zyo", "jyo")),
	dakuten(mkv("cho", "ちょ", "チョ", "tyo"), mhk("dyo", "ぢょ", "ヂョ", "jo", "zyo")),
	dakuten(m("tho", "てょ", "テョ"), m("dho", "でょ", "デョ")),
	dakuten(m("two", "とぉ", "トォ"), m("dwo", "どぉ", "ドォ")),
}

// handakutenKanaList contains the 'h' row, which has both a dakuten and a
// han-dakuten version.
var handakutenKanaList = []*Kana{
	handakuten(dakuten(m("ha", "は", "ハ"), m("ba", "ば", "バ")), m("pa", "ぱ", "パ")),
	handakuten(dakuten(m("hi", "ひ", "ヒ"), m("bi", "び", "ビ")), m("pi", "ぴ", "ピ")),
	handakuten(dakuten(mkv("fu", "ふ", "フ", "hu"), m("bu", "ぶ", "ブ")), m("pu", "ぷ", "プ")),
	handakuten(dakuten(m("he", "へ", "ヘ"), m("be", "べ", "ベ")), m("pe", "ぺ", "ペ")),
	handakuten(dakuten(m("ho", "ほ", "ホ"), m("bo", "ぼ", "ボ")), m("po", "ぽ", "ポ")),
	handakuten(dakuten(m("hya", "ひゃ", "ヒャ"), m("bya", "びゃ", "ビャ")), m("pya", "ぴゃ", "ピャ")),
	handakuten(dakuten(m("hyi", "ひぃ", "ヒィ"), m("byi", "びぃ", "ビィ")), m("pyi", "ぴぃ", "ピィ")),
	handakuten(dakuten(m("hyu", "ひゅ", "ヒュ"), m("byu", "びゅ", "ビュ")), m("pyu", "ぴゅ", "ピュ")),
	handakuten(dakuten(m("hye", "ひぇ", "ヒェ"), m("bye", "びぇ", "ビェ")), m("pye", "ぴぇ", "ピェ")),
	handakuten(dakuten(m("hyo", "ひょ", "ヒョ"), m("byo", "びょ", "ビョ")), m("pyo", "ぴょ", "ピョ")),
}

// SmallTsu and N are special-cased entries referenced directly by the
// Converter (sokuon handling and the trailing 'n').
var (
	SmallTsu = kanaList[len(kanaList)-2]
	N        = kanaList[len(kanaList)-1]
)

var (
	romajiMap   map[string]*Kana
	hiraganaMap map[string]*Kana
	katakanaMap map[string]*Kana
)

func init() {
	romajiMap = make(map[string]*Kana)
	hiraganaMap = make(map[string]*Kana)
	katakanaMap = make(map[string]*Kana)

	insertRomaji := func(k *Kana) {
		mustInsert(romajiMap, k.Romaji, k)
		for _, v := range k.Variants {
			mustInsert(romajiMap, v, k)
		}
	}
	process := func(k *Kana) {
		insertRomaji(k)
		mustInsert(hiraganaMap, k.Hiragana, k)
		mustInsert(katakanaMap, k.Katakana, k)
	}

	for _, k := range kanaList {
		process(k)
	}
	for _, k := range dakutenKanaList {
		process(k)
		process(k.Dakuten)
	}
	for _, k := range handakutenKanaList {
		process(k)
		process(k.Dakuten)
		process(k.HanDakuten)
	}
}

func mustInsert(m map[string]*Kana, key string, k *Kana) {
	if existing, ok := m[key]; ok {
		panic(fmt.Sprintf("duplicate kana map key %q: %v and %v", key, existing, k))
	}
	m[key] = k
}

// RomajiMap returns the package-wide Rōmaji -> Kana lookup table, indexed by
// every canonical and variant Rōmaji spelling.
func RomajiMap() map[string]*Kana { return romajiMap }

// HiraganaMap returns the package-wide Hiragana -> Kana lookup table.
func HiraganaMap() map[string]*Kana { return hiraganaMap }

// KatakanaMap returns the package-wide Katakana -> Kana lookup table.
func KatakanaMap() map[string]*Kana { return katakanaMap }

// Map returns the lookup table for the given character type.
func Map(t CharType) map[string]*Kana {
	switch t {
	case Romaji:
		return romajiMap
	case Hiragana:
		return hiraganaMap
	case Katakana:
		return katakanaMap
	}
	return nil
}
