package consts

const (
	TokenRevokedKey        = "auth:token:revoked:"
	PostTrendingKey        = "post:trending"
	PostTrendingStagingKey = "post:trending:staging"
)
