package code

var (
	ErrorUserRegisterIsDisable   = NewError(10101, lang{en: "User Register Is Disabled", zh_cn: "用户注册已关闭"})
	ErrorUserEmailAlreadyExists  = NewError(10102, lang{en: "Email Already Registered", zh_cn: "邮箱已被注册"})
	ErrorUserAlreadyExists       = NewError(10103, lang{en: "Username Already Exists", zh_cn: "用户名已存在"})
	ErrorUserUsernameNotValid    = NewError(10104, lang{en: "Username Format Not Valid", zh_cn: "用户名格式不正确"})
	ErrorUserPasswordNotMatch    = NewError(10105, lang{en: "Passwords Do Not Match", zh_cn: "两次输入的密码不一致"})
	ErrorUserPasswordNotValid    = NewError(10106, lang{en: "Password must be at least 8 characters long, contain uppercase, lowercase, number, and special character (@$!%*?&.)", zh_cn: "密码至少8位，且必须包含大写字母、小写字母、数字和特殊字符 (@$!%*?&.)"})
	ErrorUserRegister            = NewError(10107, lang{en: "User Register Failed", zh_cn: "用户注册失败"})
	ErrorUserLoginPasswordFailed = NewError(10108, lang{en: "Invalid Credentials", zh_cn: "用户名或密码错误"})
	ErrorUserNotFound            = NewError(10109, lang{en: "User Not Found", zh_cn: "用户不存在"})
	ErrorUserOldPasswordFailed   = NewError(10110, lang{en: "Old Password Incorrect", zh_cn: "旧密码不正确"})
)
