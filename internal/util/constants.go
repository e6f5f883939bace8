package util

// DateFormat 业务里所有"天"都用这个格式
const DateFormat = "2006-01-02"

// 存储后端类型
const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 附件上传相关常量
const (
	MimeImage = "image/"
	MimePDF   = "application/pdf"
	MimeText  = "text/plain"
)

// MaxAttachmentSize 附件大小上限
const MaxAttachmentSize = 10 << 20 // 10MB
