package code

// Note generation pipeline codes. One code per failure class of the
// pipeline: source dispatch, input shape, extraction, synthesis, storage.
var (
	ErrorInvalidSource = NewError(30001, lang{en: "Invalid source type. Must be 'youtube', 'pdf', or 'docx'.", zh_cn: "来源类型无效，必须是 youtube、pdf 或 docx"})
	ErrorMissingInput  = NewError(30002, lang{en: "Required Input Missing For Source Type", zh_cn: "缺少该来源类型所需的输入"})
	ErrorExtraction    = NewError(30003, lang{en: "Text Extraction Failed", zh_cn: "文本提取失败"})
	ErrorEmptyContent  = NewError(30004, lang{en: "No text content could be extracted from the provided source.", zh_cn: "无法从所提供的来源中提取文本内容"})
	ErrorGeneration    = NewError(30005, lang{en: "Note Generation Failed", zh_cn: "笔记生成失败"})
	ErrorStorage       = NewError(30006, lang{en: "Note Save Failed", zh_cn: "笔记保存失败"})
)
