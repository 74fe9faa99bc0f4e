package code

var (
	Success             = NewSuss(0, lang{en: "Success", zh_cn: "成功"})
	Failed              = NewError(1, lang{en: "Failed", zh_cn: "失败"})
	ErrorInvalidParams  = NewError(2, lang{en: "Invalid Params", zh_cn: "入参错误"})
	ErrorServerInternal = NewError(4, lang{en: "Internal Server Error", zh_cn: "服务内部错误"})
	ErrorNotFoundAPI    = NewError(5, lang{en: "API Not Found", zh_cn: "接口不存在"})

	ErrorNotUserAuthToken     = NewError(201, lang{en: "Auth Token Missing", zh_cn: "认证 Token 缺失"})
	ErrorInvalidUserAuthToken = NewError(202, lang{en: "Auth Token Invalid Or Expired", zh_cn: "认证 Token 无效或已过期"})
	ErrorTokenGenerate        = NewError(203, lang{en: "Auth Token Generate Failed", zh_cn: "认证 Token 生成失败"})

	ErrorDBQuery = NewError(301, lang{en: "Database Query Error", zh_cn: "数据库查询错误"})
)
