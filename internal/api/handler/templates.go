package handler

import "html/template"

const pageStyle = `
	body {
		font-family: system-ui, -apple-system, sans-serif;
		max-width: 800px;
		margin: 0 auto;
		padding: 2rem;
		background: #f5f5f5;
	}
	h1 { color: #2d5f3e; }
	a { color: #2d5f3e; }
	.card {
		background: white;
		padding: 1.5rem;
		margin-bottom: 1.5rem;
		border-radius: 8px;
		box-shadow: 0 2px 4px rgba(0,0,0,0.1);
	}
	.meta { color: #666; font-size: 0.9rem; }
`

var homeTmpl = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>RedLeaf CMS</title>
	<style>` + pageStyle + `
		.header { text-align: center; margin-bottom: 3rem; }
		.logo { font-size: 3rem; }
		.tagline { color: #666; font-style: italic; }
	</style>
</head>
<body>
	<div class="header">
		<div class="logo">🌿</div>
		<h1>RedLeaf CMS</h1>
		<p class="tagline">A lightweight content management system</p>
	</div>
	<div class="card">
		<p><a href="/posts">Read the posts</a> or head to the <a href="/admin">admin dashboard</a>.</p>
	</div>
</body>
</html>
`))

var listTmpl = template.Must(template.New("posts").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Posts - RedLeaf CMS</title>
	<style>` + pageStyle + `
		.card h2 { margin-top: 0; }
		.card a { text-decoration: none; color: inherit; }
		.card a:hover { text-decoration: underline; }
	</style>
</head>
<body>
	<h1>🌿 All Posts</h1>
	{{range .Posts}}
	<div class="card">
		<h2><a href="/posts/{{.ID}}">{{.Title}}</a></h2>
		<p class="meta">Published: {{.Date}}</p>
		<p>{{.Excerpt}}</p>
	</div>
	{{else}}
	<p>No posts yet.</p>
	{{end}}
</body>
</html>
`))

var detailTmpl = template.Must(template.New("post").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>{{.Title}} - RedLeaf CMS</title>
	<style>` + pageStyle + `
		.content { line-height: 1.6; }
		.back { margin-bottom: 1rem; }
		.back a { text-decoration: none; }
		.back a:hover { text-decoration: underline; }
	</style>
</head>
<body>
	<div class="back">
		<a href="/posts">← Back to all posts</a>
	</div>
	<div class="card">
		<h1>{{.Title}}</h1>
		<p class="meta">Published: {{.Date}}</p>
		<div class="content">
			{{.Content}}
		</div>
	</div>
</body>
</html>
`))

var adminTmpl = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Admin Dashboard - RedLeaf CMS</title>
	<style>` + pageStyle + `
		.grid {
			display: grid;
			grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
			gap: 1.5rem;
		}
		.btn {
			display: inline-block;
			padding: 0.5rem 1rem;
			margin-right: 0.5rem;
			background: #2d5f3e;
			color: white;
			text-decoration: none;
			border-radius: 4px;
		}
		.btn:hover { background: #234a30; }
	</style>
</head>
<body>
	<div class="card">
		<h1>🌿 RedLeaf Admin Dashboard</h1>
	</div>
	<div class="grid">
		<div class="card">
			<h2>Posts</h2>
			<p>Manage your blog posts through the JSON API at /api/posts.</p>
			<a href="/api/posts" class="btn">All Posts</a>
		</div>
		<div class="card">
			<h2>Users</h2>
			<p>Register editors via POST /api/users or the redleaf CLI.</p>
		</div>
	</div>
</body>
</html>
`))

var notFoundTmpl = template.Must(template.New("notfound").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Not Found - RedLeaf CMS</title>
	<style>` + pageStyle + `</style>
</head>
<body>
	<h1>Post not found</h1>
	<p><a href="/posts">← Back to all posts</a></p>
</body>
</html>
`))

var errorTmpl = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Error - RedLeaf CMS</title>
	<style>` + pageStyle + `</style>
</head>
<body>
	<h1>Something went wrong</h1>
	<p>Please try again later.</p>
</body>
</html>
`))
