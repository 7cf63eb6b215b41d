package htmlexport

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { margin: 0; font-family: system-ui, sans-serif; color: #f8fafc; background: linear-gradient(135deg, #0f172a, #581c87, #0f172a); }
nav { position: sticky; top: 0; display: flex; gap: 1.5rem; align-items: center; padding: 1rem 2rem; background: rgba(0,0,0,.4); }
nav .brand { font-weight: 700; font-size: 1.4rem; margin-right: auto; }
nav a { color: #cbd5e1; text-decoration: none; }
nav a:hover { color: #60a5fa; }
section { max-width: 64rem; margin: 0 auto; padding: 5rem 1.5rem; }
#hero { min-height: 100vh; display: flex; flex-direction: column; justify-content: center; text-align: center; }
h1 { font-size: 4rem; margin: 0 0 1rem; }
h2 { font-size: 2.5rem; text-align: center; }
.card { background: rgba(30,41,59,.5); border: 1px solid rgba(255,255,255,.1); border-radius: 1rem; padding: 1.5rem; margin-bottom: 1.5rem; }
.muted { color: #94a3b8; }
.chip { display: inline-block; padding: .2rem .7rem; margin: .2rem; border-radius: 999px; background: rgba(255,255,255,.1); font-size: .9rem; }
.accent { height: .5rem; border-radius: 999px; margin-bottom: 1rem; }
.accent-blue-purple { background: linear-gradient(90deg, #3B82F6, #9333EA); }
.accent-green-teal { background: linear-gradient(90deg, #22C55E, #0D9488); }
.accent-orange-red { background: linear-gradient(90deg, #F97316, #DC2626); }
.accent-purple-pink { background: linear-gradient(90deg, #A855F7, #EC4899); }
.accent-yellow-orange { background: linear-gradient(90deg, #FACC15, #F97316); }
.cta a { display: inline-block; margin: 0 .75rem; padding: .75rem 1.5rem; border-radius: .5rem; color: #fff; background: #2563eb; text-decoration: none; }
footer { text-align: center; padding: 2rem; background: rgba(0,0,0,.4); color: #94a3b8; }
</style>
</head>
<body>
<nav>
<span class="brand">{{.P.Name}}</span>
{{- range .Nav}}
<a href="#{{.ID}}">{{.Label}}</a>
{{- end}}
</nav>
{{- range .Sections}}
{{- if eq . "hero"}}
<section id="hero">
<h1>{{$.P.Name}}</h1>
{{- with $.P.Headline}}
<p class="lead">{{.}}</p>
{{- end}}
{{- with $.P.Tagline}}
<p class="muted">{{.}}</p>
{{- end}}
<p class="cta">
{{- with $.P.Contact.GitHub}}<a href="{{.}}">GitHub</a>{{end}}
{{- with $.P.Contact.LinkedIn}}<a href="{{.}}">LinkedIn</a>{{end}}
{{- with $.EmailLink}}<a href="{{.}}">Email</a>{{end}}
</p>
{{- with $.HeroNext}}
<p><a href="#{{.}}">&#8595;</a></p>
{{- end}}
</section>
{{- else if eq . "about"}}
<section id="about">
<h2>About Me</h2>
{{- range $.Bio}}
{{.}}
{{- end}}
{{- with $.P.Location}}
<p class="muted">{{.}}</p>
{{- end}}
{{- if $.P.Stats}}
<div class="card">
{{- range $.P.Stats}}
<p><strong>{{.Value}}</strong> {{.Label}}</p>
{{- end}}
</div>
{{- end}}
</section>
{{- else if eq . "skills"}}
<section id="skills">
<h2>Skills &amp; Technologies</h2>
{{- range $.P.Skills}}
<div class="card">
<h3>{{.Category}}</h3>
{{- range .Skills}}
<span class="chip">{{.}}</span>
{{- end}}
</div>
{{- end}}
</section>
{{- else if eq . "experience"}}
<section id="experience">
<h2>Experience</h2>
{{- range $.Jobs}}
<div class="card">
<h3>{{.Role}}</h3>
<p class="muted">{{.Company}}{{with .Period}} &middot; {{.}}{{end}}</p>
{{.DescriptionHTML}}
{{- if .Achievements}}
<ul>
{{- range .Achievements}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
</div>
{{- end}}
</section>
{{- else if eq . "projects"}}
<section id="projects">
<h2>Featured Projects</h2>
{{- range $.Projects}}
<div class="card">
<div class="accent accent-{{.Theme}}"></div>
<h3>{{.Title}}</h3>
{{.DescriptionHTML}}
{{- if .Highlights}}
<ul>
{{- range .Highlights}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
{{- range .Tech}}
<span class="chip">{{.}}</span>
{{- end}}
{{- with .Repository}}
<p><a href="{{.}}">View code</a></p>
{{- end}}
</div>
{{- end}}
</section>
{{- else if eq . "education"}}
<section id="education">
<h2>Education &amp; Certifications</h2>
{{- range $.P.Education}}
<div class="card">
<h3>{{.Title}}</h3>
{{- with .Detail}}
<p>{{.}}</p>
{{- end}}
<p class="muted">{{.Institution}}{{with .Period}} &middot; {{.}}{{end}}</p>
</div>
{{- end}}
{{- if $.P.Certifications}}
<div class="card">
<h3>Certifications</h3>
<ul>
{{- range $.P.Certifications}}
<li>{{.}}</li>
{{- end}}
</ul>
</div>
{{- end}}
{{- if $.P.Pitch.Heading}}
<div class="card cta">
<h3>{{$.P.Pitch.Heading}}</h3>
{{$.PitchBody}}
{{- with $.PhoneLink}}<a href="{{.}}">Call Me</a>{{end}}
{{- with $.EmailLink}}<a href="{{.}}">Email Me</a>{{end}}
</div>
{{- end}}
</section>
{{- end}}
{{- end}}
{{- with .P.Footer}}
<footer>{{.}}</footer>
{{- end}}
</body>
</html>
`
