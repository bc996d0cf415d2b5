package speech

import "sort"

// DefaultVoice is used when no voice is configured.
const DefaultVoice = "zh-CN-XiaoxiaoNeural"

// Voice describes an available zh-CN neural voice.
type Voice struct {
	Key         string
	ID          string
	Name        string
	Gender      string
	Description string
	Style       string
}

var voices = map[string]Voice{
	"xiaoxiao": {Key: "xiaoxiao", ID: "zh-CN-XiaoxiaoNeural", Name: "晓晓", Gender: "female", Description: "Warm and friendly female voice", Style: "general"},
	"xiaoyi":   {Key: "xiaoyi", ID: "zh-CN-XiaoyiNeural", Name: "晓伊", Gender: "female", Description: "Young and energetic female voice", Style: "cheerful"},
	"xiaoxuan": {Key: "xiaoxuan", ID: "zh-CN-XiaoxuanNeural", Name: "晓萱", Gender: "female", Description: "Calm and soothing female voice", Style: "calm"},
	"xiaohan":  {Key: "xiaohan", ID: "zh-CN-XiaohanNeural", Name: "晓涵", Gender: "female", Description: "Professional female voice", Style: "professional"},
	"xiaomeng": {Key: "xiaomeng", ID: "zh-CN-XiaomengNeural", Name: "晓梦", Gender: "female", Description: "Young girl voice", Style: "young"},
	"xiaoyan":  {Key: "xiaoyan", ID: "zh-CN-XiaoyanNeural", Name: "晓颜", Gender: "female", Description: "Storytelling female voice", Style: "storytelling"},
	"yunxi":    {Key: "yunxi", ID: "zh-CN-YunxiNeural", Name: "云希", Gender: "male", Description: "Professional male voice", Style: "professional"},
	"yunyang":  {Key: "yunyang", ID: "zh-CN-YunyangNeural", Name: "云扬", Gender: "male", Description: "News anchor male voice", Style: "newscast"},
	"yunjian":  {Key: "yunjian", ID: "zh-CN-YunjianNeural", Name: "云健", Gender: "male", Description: "Energetic male voice", Style: "energetic"},
	"yunxia":   {Key: "yunxia", ID: "zh-CN-YunxiaNeural", Name: "云夏", Gender: "male", Description: "Young male voice", Style: "young"},
	"yunfeng":  {Key: "yunfeng", ID: "zh-CN-YunfengNeural", Name: "云枫", Gender: "male", Description: "Calm male voice", Style: "calm"},
	"liaoning": {Key: "liaoning", ID: "zh-CN-liaoning-XiaobeiNeural", Name: "晓北", Gender: "female", Description: "Liaoning dialect female voice", Style: "regional"},
	"shaanxi":  {Key: "shaanxi", ID: "zh-CN-shaanxi-XiaoniNeural", Name: "晓妮", Gender: "female", Description: "Shaanxi dialect female voice", Style: "regional"},
}

// ResolveVoice maps a short voice key or full voice ID to a voice ID.
// Unknown values are returned unchanged so new service voices work without
// a catalog update.
func ResolveVoice(nameOrKey string) string {
	if nameOrKey == "" {
		return DefaultVoice
	}
	if v, ok := voices[nameOrKey]; ok {
		return v.ID
	}
	return nameOrKey
}

// Voices returns the catalog sorted by key.
func Voices() []Voice {
	out := make([]Voice, 0, len(voices))
	for _, v := range voices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
