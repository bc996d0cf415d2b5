package tonebank

// builtin is the authored word bank. Tones are re-derived from the pinyin
// diacritics at load time; the declared tone is only a fallback.
var builtin = []RawEntry{
	// Tone 1 - high level
	{Character: "妈", Pinyin: "mā", Tone: 1, Meaning: "mother"},
	{Character: "天", Pinyin: "tiān", Tone: 1, Meaning: "sky/day"},
	{Character: "书", Pinyin: "shū", Tone: 1, Meaning: "book"},
	{Character: "车", Pinyin: "chē", Tone: 1, Meaning: "car"},
	{Character: "花", Pinyin: "huā", Tone: 1, Meaning: "flower"},
	{Character: "家", Pinyin: "jiā", Tone: 1, Meaning: "home"},
	{Character: "师", Pinyin: "shī", Tone: 1, Meaning: "teacher"},
	{Character: "一", Pinyin: "yī", Tone: 1, Meaning: "one"},
	{Character: "猫", Pinyin: "māo", Tone: 1, Meaning: "cat"},
	{Character: "高", Pinyin: "gāo", Tone: 1, Meaning: "tall"},
	{Character: "三", Pinyin: "sān", Tone: 1, Meaning: "three"},
	{Character: "山", Pinyin: "shān", Tone: 1, Meaning: "mountain"},
	{Character: "中", Pinyin: "zhōng", Tone: 1, Meaning: "middle"},
	{Character: "听", Pinyin: "tīng", Tone: 1, Meaning: "listen"},
	{Character: "星", Pinyin: "xīng", Tone: 1, Meaning: "star"},
	{Character: "生", Pinyin: "shēng", Tone: 1, Meaning: "birth"},
	{Character: "风", Pinyin: "fēng", Tone: 1, Meaning: "wind"},
	{Character: "光", Pinyin: "guāng", Tone: 1, Meaning: "light"},
	{Character: "关", Pinyin: "guān", Tone: 1, Meaning: "close"},
	{Character: "安", Pinyin: "ān", Tone: 1, Meaning: "peace"},
	{Character: "班", Pinyin: "bān", Tone: 1, Meaning: "class"},
	{Character: "杯", Pinyin: "bēi", Tone: 1, Meaning: "cup"},
	{Character: "春", Pinyin: "chūn", Tone: 1, Meaning: "spring"},
	{Character: "灯", Pinyin: "dēng", Tone: 1, Meaning: "lamp"},
	{Character: "低", Pinyin: "dī", Tone: 1, Meaning: "low"},
	{Character: "分", Pinyin: "fēn", Tone: 1, Meaning: "minute"},
	{Character: "歌", Pinyin: "gē", Tone: 1, Meaning: "song"},
	{Character: "黑", Pinyin: "hēi", Tone: 1, Meaning: "black"},
	{Character: "鸡", Pinyin: "jī", Tone: 1, Meaning: "chicken"},
	{Character: "开", Pinyin: "kāi", Tone: 1, Meaning: "open"},
	{Character: "拉", Pinyin: "lā", Tone: 1, Meaning: "pull"},
	{Character: "千", Pinyin: "qiān", Tone: 1, Meaning: "thousand"},
	{Character: "他", Pinyin: "tā", Tone: 1, Meaning: "he"},
	{Character: "新", Pinyin: "xīn", Tone: 1, Meaning: "new"},
	{Character: "音", Pinyin: "yīn", Tone: 1, Meaning: "sound"},
	{Character: "真", Pinyin: "zhēn", Tone: 1, Meaning: "real"},
	{Character: "知", Pinyin: "zhī", Tone: 1, Meaning: "know"},
	{Character: "八", Pinyin: "bā", Tone: 1, Meaning: "eight"},
	{Character: "今", Pinyin: "jīn", Tone: 1, Meaning: "today"},

	// Tone 2 - rising
	{Character: "茶", Pinyin: "chá", Tone: 2, Meaning: "tea"},
	{Character: "红", Pinyin: "hóng", Tone: 2, Meaning: "red"},
	{Character: "来", Pinyin: "lái", Tone: 2, Meaning: "come"},
	{Character: "年", Pinyin: "nián", Tone: 2, Meaning: "year"},
	{Character: "钱", Pinyin: "qián", Tone: 2, Meaning: "money"},
	{Character: "人", Pinyin: "rén", Tone: 2, Meaning: "person"},
	{Character: "时", Pinyin: "shí", Tone: 2, Meaning: "time"},
	{Character: "学", Pinyin: "xué", Tone: 2, Meaning: "study"},
	{Character: "鱼", Pinyin: "yú", Tone: 2, Meaning: "fish"},
	{Character: "长", Pinyin: "cháng", Tone: 2, Meaning: "long"},
	{Character: "成", Pinyin: "chéng", Tone: 2, Meaning: "become"},
	{Character: "回", Pinyin: "huí", Tone: 2, Meaning: "return"},
	{Character: "名", Pinyin: "míng", Tone: 2, Meaning: "name"},
	{Character: "平", Pinyin: "píng", Tone: 2, Meaning: "flat"},
	{Character: "头", Pinyin: "tóu", Tone: 2, Meaning: "head"},
	{Character: "同", Pinyin: "tóng", Tone: 2, Meaning: "same"},
	{Character: "完", Pinyin: "wán", Tone: 2, Meaning: "finish"},
	{Character: "王", Pinyin: "wáng", Tone: 2, Meaning: "king"},
	{Character: "文", Pinyin: "wén", Tone: 2, Meaning: "text"},
	{Character: "无", Pinyin: "wú", Tone: 2, Meaning: "none"},
	{Character: "行", Pinyin: "xíng", Tone: 2, Meaning: "walk"},
	{Character: "羊", Pinyin: "yáng", Tone: 2, Meaning: "sheep"},
	{Character: "园", Pinyin: "yuán", Tone: 2, Meaning: "garden"},
	{Character: "云", Pinyin: "yún", Tone: 2, Meaning: "cloud"},
	{Character: "白", Pinyin: "bái", Tone: 2, Meaning: "white"},
	{Character: "从", Pinyin: "cóng", Tone: 2, Meaning: "from"},
	{Character: "和", Pinyin: "hé", Tone: 2, Meaning: "and"},
	{Character: "男", Pinyin: "nán", Tone: 2, Meaning: "male"},
	{Character: "朋", Pinyin: "péng", Tone: 2, Meaning: "friend"},
	{Character: "球", Pinyin: "qiú", Tone: 2, Meaning: "ball"},
	{Character: "谁", Pinyin: "shéi", Tone: 2, Meaning: "who"},
	{Character: "题", Pinyin: "tí", Tone: 2, Meaning: "topic"},
	{Character: "寻", Pinyin: "xún", Tone: 2, Meaning: "seek"},
	{Character: "言", Pinyin: "yán", Tone: 2, Meaning: "speech"},
	{Character: "原", Pinyin: "yuán", Tone: 2, Meaning: "origin"},
	{Character: "直", Pinyin: "zhí", Tone: 2, Meaning: "straight"},

	// Tone 3 - falling-rising
	{Character: "你", Pinyin: "nǐ", Tone: 3, Meaning: "you"},
	{Character: "好", Pinyin: "hǎo", Tone: 3, Meaning: "good"},
	{Character: "我", Pinyin: "wǒ", Tone: 3, Meaning: "I/me"},
	{Character: "有", Pinyin: "yǒu", Tone: 3, Meaning: "have"},
	{Character: "小", Pinyin: "xiǎo", Tone: 3, Meaning: "small"},
	{Character: "水", Pinyin: "shuǐ", Tone: 3, Meaning: "water"},
	{Character: "米", Pinyin: "mǐ", Tone: 3, Meaning: "rice"},
	{Character: "五", Pinyin: "wǔ", Tone: 3, Meaning: "five"},
	{Character: "马", Pinyin: "mǎ", Tone: 3, Meaning: "horse"},
	{Character: "买", Pinyin: "mǎi", Tone: 3, Meaning: "buy"},
	{Character: "美", Pinyin: "měi", Tone: 3, Meaning: "beautiful"},
	{Character: "狗", Pinyin: "gǒu", Tone: 3, Meaning: "dog"},
	{Character: "古", Pinyin: "gǔ", Tone: 3, Meaning: "ancient"},
	{Character: "老", Pinyin: "lǎo", Tone: 3, Meaning: "old"},
	{Character: "两", Pinyin: "liǎng", Tone: 3, Meaning: "two (items)"},
	{Character: "起", Pinyin: "qǐ", Tone: 3, Meaning: "rise"},
	{Character: "手", Pinyin: "shǒu", Tone: 3, Meaning: "hand"},
	{Character: "土", Pinyin: "tǔ", Tone: 3, Meaning: "earth"},
	{Character: "晚", Pinyin: "wǎn", Tone: 3, Meaning: "late"},
	{Character: "舞", Pinyin: "wǔ", Tone: 3, Meaning: "dance"},
	{Character: "写", Pinyin: "xiě", Tone: 3, Meaning: "write"},
	{Character: "雨", Pinyin: "yǔ", Tone: 3, Meaning: "rain"},
	{Character: "早", Pinyin: "zǎo", Tone: 3, Meaning: "early"},
	{Character: "走", Pinyin: "zǒu", Tone: 3, Meaning: "walk"},
	{Character: "左", Pinyin: "zuǒ", Tone: 3, Meaning: "left"},
	{Character: "北", Pinyin: "běi", Tone: 3, Meaning: "north"},
	{Character: "本", Pinyin: "běn", Tone: 3, Meaning: "root/this"},
	{Character: "给", Pinyin: "gěi", Tone: 3, Meaning: "give"},
	{Character: "果", Pinyin: "guǒ", Tone: 3, Meaning: "fruit"},
	{Character: "几", Pinyin: "jǐ", Tone: 3, Meaning: "how many"},
	{Character: "可", Pinyin: "kě", Tone: 3, Meaning: "can"},
	{Character: "口", Pinyin: "kǒu", Tone: 3, Meaning: "mouth"},
	{Character: "里", Pinyin: "lǐ", Tone: 3, Meaning: "inside"},
	{Character: "脸", Pinyin: "liǎn", Tone: 3, Meaning: "face"},
	{Character: "女", Pinyin: "nǚ", Tone: 3, Meaning: "female"},
	{Character: "请", Pinyin: "qǐng", Tone: 3, Meaning: "please"},
	{Character: "想", Pinyin: "xiǎng", Tone: 3, Meaning: "think"},

	// Tone 4 - falling
	{Character: "爱", Pinyin: "ài", Tone: 4, Meaning: "love"},
	{Character: "爸", Pinyin: "bà", Tone: 4, Meaning: "father"},
	{Character: "不", Pinyin: "bù", Tone: 4, Meaning: "not"},
	{Character: "菜", Pinyin: "cài", Tone: 4, Meaning: "vegetable"},
	{Character: "大", Pinyin: "dà", Tone: 4, Meaning: "big"},
	{Character: "的", Pinyin: "de", Tone: 4, Meaning: "(possessive)"},
	{Character: "地", Pinyin: "dì", Tone: 4, Meaning: "ground"},
	{Character: "对", Pinyin: "duì", Tone: 4, Meaning: "correct"},
	{Character: "二", Pinyin: "èr", Tone: 4, Meaning: "two"},
	{Character: "饭", Pinyin: "fàn", Tone: 4, Meaning: "rice/meal"},
	{Character: "个", Pinyin: "gè", Tone: 4, Meaning: "(measure word)"},
	{Character: "过", Pinyin: "guò", Tone: 4, Meaning: "pass"},
	{Character: "后", Pinyin: "hòu", Tone: 4, Meaning: "after"},
	{Character: "话", Pinyin: "huà", Tone: 4, Meaning: "speech"},
	{Character: "会", Pinyin: "huì", Tone: 4, Meaning: "can/will"},
	{Character: "见", Pinyin: "jiàn", Tone: 4, Meaning: "see"},
	{Character: "叫", Pinyin: "jiào", Tone: 4, Meaning: "call"},
	{Character: "看", Pinyin: "kàn", Tone: 4, Meaning: "look"},
	{Character: "快", Pinyin: "kuài", Tone: 4, Meaning: "fast"},
	{Character: "乐", Pinyin: "lè", Tone: 4, Meaning: "happy"},
	{Character: "六", Pinyin: "liù", Tone: 4, Meaning: "six"},
	{Character: "路", Pinyin: "lù", Tone: 4, Meaning: "road"},
	{Character: "骂", Pinyin: "mà", Tone: 4, Meaning: "scold"},
	{Character: "卖", Pinyin: "mài", Tone: 4, Meaning: "sell"},
	{Character: "面", Pinyin: "miàn", Tone: 4, Meaning: "face/noodle"},
	{Character: "木", Pinyin: "mù", Tone: 4, Meaning: "wood"},
	{Character: "去", Pinyin: "qù", Tone: 4, Meaning: "go"},
	{Character: "日", Pinyin: "rì", Tone: 4, Meaning: "day/sun"},
	{Character: "上", Pinyin: "shàng", Tone: 4, Meaning: "up/on"},
	{Character: "四", Pinyin: "sì", Tone: 4, Meaning: "four"},
	{Character: "太", Pinyin: "tài", Tone: 4, Meaning: "too"},
	{Character: "万", Pinyin: "wàn", Tone: 4, Meaning: "ten thousand"},
	{Character: "问", Pinyin: "wèn", Tone: 4, Meaning: "ask"},
	{Character: "下", Pinyin: "xià", Tone: 4, Meaning: "down"},
	{Character: "谢", Pinyin: "xiè", Tone: 4, Meaning: "thank"},
	{Character: "要", Pinyin: "yào", Tone: 4, Meaning: "want"},
	{Character: "月", Pinyin: "yuè", Tone: 4, Meaning: "moon/month"},
	{Character: "在", Pinyin: "zài", Tone: 4, Meaning: "at/in"},
	{Character: "这", Pinyin: "zhè", Tone: 4, Meaning: "this"},
}
